package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"tpw/src/db"
	"tpw/src/middlewares"
	"tpw/src/models"
	"tpw/src/types"
	"tpw/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type TestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Tenant models.Tenant
	User   models.User
	Token  string
}

var dbi *gorm.DB

func (s *TestSuite) SetupSuite() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("tripdate", tripDateValidatorFunc)
		v.RegisterValidation("gtedate", gtedatefield)
	}

	d, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("error opening test database: %s", err.Error())
	}
	db.NewDB(d)
	s.DB = d
	dbi = d

	err = dbi.AutoMigrate(
		&models.Plan{},
		&models.Tenant{},
		&models.User{},
		&models.Lead{},
		&models.LeadFollowUp{},
		&models.Hotel{},
		&models.AccommodationRate{},
		&models.TransportCompany{},
		&models.Vehicle{},
		&models.ItineraryTemplate{},
		&models.TourPackage{},
		&models.DayItinerary{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	s.Tenant = models.Tenant{Name: "Valley Tours", Code: "valley-tours", Email: "office@valley.example", IsActive: true}
	if err := dbi.Create(&s.Tenant).Error; err != nil {
		log.Fatalf("Could not create tenant: %s", err.Error())
	}

	hash, err := utils.HashPassword("s3cret-pass")
	if err != nil {
		log.Fatalf("Could not hash password: %s", err.Error())
	}
	s.User = models.User{
		TenantID:     s.Tenant.ID,
		Email:        "agent@valley.example",
		PasswordHash: hash,
		Name:         "Test Agent",
		Role:         types.ROLE_AGENT,
		IsActive:     true,
	}
	if err := dbi.Create(&s.User).Error; err != nil {
		log.Fatalf("Could not create user: %s", err.Error())
	}

	token, err := utils.GenerateJWT(&s.User)
	if err != nil {
		log.Fatalf("Error generating JWT token: %s", err.Error())
	}
	s.Token = token
}

func (s *TestSuite) TearDownSuite() {
	inner, err := s.DB.DB()
	if err != nil {
		log.Printf("Error accessing inner db instance: %s\n", err.Error())
		return
	}
	inner.Close()
}

func (s *TestSuite) authorizedRouter(register ...func(*gin.RouterGroup) *gin.RouterGroup) *gin.Engine {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1.Use(middlewares.AuthMiddleware)
	for _, r := range register {
		r(apiv1)
	}
	return router
}

func (s *TestSuite) request(router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		rbytes, err := json.Marshal(body)
		assert.Nil(s.T(), err)
		reader = strings.NewReader(string(rbytes))
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.Token))
	router.ServeHTTP(w, req)
	return w
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Unsetenv("MAINTENANCE_MODE")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	apiv1Group(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestAuthRoutes() {
	router := setupRouter()
	guestAuthRoutes(router)

	s.Run("login with valid credentials returns a token", func() {
		w := httptest.NewRecorder()
		body, _ := json.Marshal(map[string]any{
			"email":    "agent@valley.example",
			"password": "s3cret-pass",
		})
		req, _ := http.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(string(body)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		assert.NotEmpty(s.T(), gjson.Get(string(rbytes), "token").String())
	})

	s.Run("login with a wrong password returns 401", func() {
		w := httptest.NewRecorder()
		body, _ := json.Marshal(map[string]any{
			"email":    "agent@valley.example",
			"password": "wrong",
		})
		req, _ := http.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(string(body)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 401, w.Code)
	})

	s.Run("register creates an agent under an existing tenant", func() {
		w := httptest.NewRecorder()
		body, _ := json.Marshal(map[string]any{
			"tenant_id": s.Tenant.ID.String(),
			"email":     "new-agent@valley.example",
			"password":  "another-pass",
			"name":      "New Agent",
		})
		req, _ := http.NewRequest("POST", "/api/v1/auth/register", strings.NewReader(string(body)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		assert.NotEmpty(s.T(), gjson.Get(string(rbytes), "id").String())
	})

	s.Run("register against an unknown tenant returns 400", func() {
		w := httptest.NewRecorder()
		body, _ := json.Marshal(map[string]any{
			"tenant_id": uuid.New().String(),
			"email":     "orphan@valley.example",
			"password":  "pass",
			"name":      "Orphan",
		})
		req, _ := http.NewRequest("POST", "/api/v1/auth/register", strings.NewReader(string(body)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})
}

func (s *TestSuite) TestAuthorizationRequired() {
	router := s.authorizedRouter(leadHandlers)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/leads", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 401, w.Code)
}

func (s *TestSuite) TestLeads() {
	router := s.authorizedRouter(leadHandlers)

	var leadID string
	s.Run("create returns 201 with the new id", func() {
		w := s.request(router, "POST", "/api/v1/leads", types.CreateLeadRequestBody{
			ClientName:  "Arjun Mehta",
			PhoneNumber: "9876543210",
			ClientCity:  "Pune",
		})
		assert.Equal(s.T(), 201, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		leadID = gjson.Get(string(rbytes), "id").String()
		assert.NotEmpty(s.T(), leadID)
	})

	s.Run("create without required fields returns 400", func() {
		w := s.request(router, "POST", "/api/v1/leads", map[string]any{"client_name": "No Phone"})
		assert.Equal(s.T(), 400, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.NotEmpty(s.T(), gjson.Get(string(rbytes), "error").String())
	})

	s.Run("list returns the created lead", func() {
		w := s.request(router, "GET", "/api/v1/leads", nil)
		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		sjson := string(rbytes)
		assert.GreaterOrEqual(s.T(), gjson.Get(sjson, "total").Int(), int64(1))
		assert.True(s.T(), gjson.Get(sjson, "data").IsArray())
	})

	s.Run("get by id returns the lead with follow-ups", func() {
		w := s.request(router, "GET", "/api/v1/leads/"+leadID, nil)
		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.Equal(s.T(), "Arjun Mehta", gjson.Get(string(rbytes), "data.client_name").String())
	})

	s.Run("get with an unknown id returns 404", func() {
		w := s.request(router, "GET", "/api/v1/leads/"+uuid.New().String(), nil)
		assert.Equal(s.T(), 404, w.Code)
	})

	s.Run("status update fans out to follow-up history", func() {
		w := s.request(router, "PUT", "/api/v1/leads/"+leadID, map[string]any{
			"client_name":  "Arjun Mehta",
			"phone_number": "9876543210",
			"status":       "TripConfirmed",
		})
		assert.Equal(s.T(), 200, w.Code)

		w = s.request(router, "GET", "/api/v1/leads/"+leadID+"/follow-ups", nil)
		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.GreaterOrEqual(s.T(), len(gjson.Get(string(rbytes), "data").Array()), 1)
	})
}

func (s *TestSuite) TestPackages() {
	router := s.authorizedRouter(packageHandlers)

	var packageID string
	s.Run("create with an itinerary returns 201", func() {
		w := s.request(router, "POST", "/api/v1/packages", map[string]any{
			"client_name":            "Arjun Mehta",
			"client_phone":           "9876543210",
			"client_pickup_location": "Srinagar Airport",
			"client_drop_location":   "Srinagar Airport",
			"package_name":           "Kashmir Delight",
			"start_date":             "2030-04-10",
			"end_date":               "2030-04-12",
			"number_of_adults":       2,
			"day_wise_itinerary": []map[string]any{
				{"day_number": 1, "date": "2030-04-10"},
				{"day_number": 2, "date": "2030-04-11"},
			},
		})
		assert.Equal(s.T(), 201, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		packageID = gjson.Get(string(rbytes), "id").String()
		assert.NotEmpty(s.T(), packageID)
	})

	s.Run("create with end before start returns 400", func() {
		w := s.request(router, "POST", "/api/v1/packages", map[string]any{
			"client_name":            "Arjun Mehta",
			"client_phone":           "9876543210",
			"client_pickup_location": "Srinagar Airport",
			"client_drop_location":   "Srinagar Airport",
			"package_name":           "Kashmir Delight",
			"start_date":             "2030-04-12",
			"end_date":               "2030-04-10",
		})
		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("get by id returns the itinerary graph", func() {
		w := s.request(router, "GET", "/api/v1/packages/"+packageID, nil)
		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		days := gjson.Get(string(rbytes), "data.day_wise_itinerary").Array()
		assert.Len(s.T(), days, 2)
	})
}

func (s *TestSuite) TestLookups() {
	router := s.authorizedRouter(lookupHandlers)

	w := s.request(router, "GET", "/api/v1/lookups/inclusions", nil)
	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	assert.Len(s.T(), gjson.Get(string(rbytes), "data").Array(), 12)
}

func (s *TestSuite) TestTenantAdminForbiddenForAgents() {
	router := s.authorizedRouter(tenantHandlers)

	w := s.request(router, "GET", "/api/v1/admin/tenants", nil)
	assert.Equal(s.T(), 403, w.Code)
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
