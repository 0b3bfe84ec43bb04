package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"github.com/yukikurage/project-tracker-api/internal/repository"
	"github.com/yukikurage/project-tracker-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type ProjectHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *ProjectHandlerTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.UserProjectRole{},
	)
	suite.Require().NoError(err)

	handler := NewProjectHandler(services.NewProjectService(repository.NewProjectRepository(suite.db)))

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.GET("/api/projects", handler.ListProjects)
	suite.router.POST("/api/projects", handler.CreateProject)
	suite.router.PUT("/api/projects", handler.UpdateProject)
	suite.router.DELETE("/api/projects/:id", handler.DeleteProject)
	suite.router.PUT("/api/projects/role", handler.UpdateUserProjectRole)
	suite.router.POST("/api/projects/members", handler.AddProjectMember)
}

func (suite *ProjectHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ProjectHandlerTestSuite) request(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProjectHandlerTestSuite) createProject(name string, deleted bool) *models.Project {
	project := &models.Project{Name: name, Description: "d", Status: "Pending", IsDeleted: deleted}
	suite.Require().NoError(suite.db.Create(project).Error)
	return project
}

func (suite *ProjectHandlerTestSuite) TestListProjects_EnvelopeAndCounts() {
	suite.createProject("A", false)
	suite.createProject("B", false)
	suite.createProject("C", true)
	suite.createProject("D", false)

	w := suite.request("GET", "/api/projects?pageIndex=1&pageSize=2", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Paging struct {
			PageIndex  int   `json:"pageIndex"`
			PageSize   int   `json:"pageSize"`
			TotalCount int64 `json:"totalCount"`
			PageNumber int   `json:"pageNumber"`
		} `json:"paging"`
		Items []map[string]interface{} `json:"items"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(suite.T(), int64(3), response.Paging.TotalCount)
	assert.Equal(suite.T(), 2, response.Paging.PageNumber)
	suite.Require().Len(response.Items, 2)
	assert.Equal(suite.T(), "A", response.Items[0]["name"])
	assert.Equal(suite.T(), "B", response.Items[1]["name"])
}

func (suite *ProjectHandlerTestSuite) TestListProjects_RoleFilterUsesMembership() {
	project := suite.createProject("Owned", false)
	suite.createProject("Loose", false)
	suite.Require().NoError(suite.db.Create(&models.UserProjectRole{
		UserID: 2, ProjectID: project.ID, Role: models.RoleOwner,
	}).Error)

	w := suite.request("GET", "/api/projects?role=Owner", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Items []map[string]interface{} `json:"items"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Items, 1)
	assert.Equal(suite.T(), "Owned", response.Items[0]["name"])
}

func (suite *ProjectHandlerTestSuite) TestListProjects_InvalidUserID() {
	w := suite.request("GET", "/api/projects?userId=abc", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_Success() {
	w := suite.request("POST", "/api/projects", gin.H{
		"name":        "New Project",
		"description": "Something",
		"created_by":  4,
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var count int64
	suite.db.Model(&models.Project{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_PreAssignedIDRejected() {
	w := suite.request("POST", "/api/projects", gin.H{
		"id":          3,
		"name":        "New Project",
		"description": "Something",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_NotFound() {
	w := suite.request("PUT", "/api/projects", gin.H{
		"id":          42,
		"name":        "Renamed",
		"description": "Still here",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_SoftDeletesAndHidesFromListing() {
	project := suite.createProject("Doomed", false)

	w := suite.request("DELETE", "/api/projects/1", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var raw models.Project
	suite.Require().NoError(suite.db.First(&raw, project.ID).Error)
	assert.True(suite.T(), raw.IsDeleted)

	// repeated delete sees a guarded fetch and misses
	w = suite.request("DELETE", "/api/projects/1", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_InvalidID() {
	w := suite.request("DELETE", "/api/projects/abc", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestUpdateUserProjectRole_Success() {
	project := suite.createProject("P", false)
	suite.Require().NoError(suite.db.Create(&models.UserProjectRole{
		UserID: 2, ProjectID: project.ID, Role: models.RoleGuest,
	}).Error)

	w := suite.request("PUT", "/api/projects/role", gin.H{
		"user_id":    2,
		"project_id": project.ID,
		"role":       "Developer",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var membership models.UserProjectRole
	suite.Require().NoError(suite.db.Where("user_id = ? AND project_id = ?", 2, project.ID).First(&membership).Error)
	assert.Equal(suite.T(), models.RoleDeveloper, membership.Role)
}

func (suite *ProjectHandlerTestSuite) TestUpdateUserProjectRole_MissingMapping() {
	w := suite.request("PUT", "/api/projects/role", gin.H{
		"user_id":    2,
		"project_id": 3,
		"role":       "Developer",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestAddProjectMember_Created() {
	project := suite.createProject("P", false)

	w := suite.request("POST", "/api/projects/members", gin.H{
		"user_id":    2,
		"project_id": project.ID,
		"role":       "Developer",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
