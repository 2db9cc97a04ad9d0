package lib

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBrowserManagerIsSingleton(t *testing.T) {
	const callers = 8
	managers := make([]*BrowserManager, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			managers[i] = GetBrowserManager()
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		assert.Same(t, managers[0], managers[i])
	}
}
