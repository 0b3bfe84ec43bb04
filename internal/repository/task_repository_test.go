package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type TaskRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo TaskRepository
}

func (suite *TaskRepositoryTestSuite) SetupTest() {
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

	suite.repo = NewTaskRepository(suite.db)
}

func (suite *TaskRepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskRepositoryTestSuite) createProject(name string) *models.Project {
	project := &models.Project{Name: name, Description: "d", Status: "Pending"}
	suite.Require().NoError(suite.db.Create(project).Error)
	return project
}

func (suite *TaskRepositoryTestSuite) createUser(first, last string) *models.User {
	user := &models.User{
		FirstName:    first,
		LastName:     last,
		Username:     first + last,
		Email:        first + "." + last + "@example.com",
		PasswordHash: "x",
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *TaskRepositoryTestSuite) createTask(title string, projectID uint64, assignedTo *uint64, deleted bool) *models.Task {
	task := &models.Task{
		Title:       title,
		Description: title + " description",
		Status:      "Pending",
		ProjectID:   projectID,
		AssignedTo:  assignedTo,
		IsDeleted:   deleted,
	}
	suite.Require().NoError(suite.db.Create(task).Error)
	return task
}

func (suite *TaskRepositoryTestSuite) TestList_FiltersByProjectAndSkipsDeleted() {
	p1 := suite.createProject("P1")
	p2 := suite.createProject("P2")
	p3 := suite.createProject("P3")

	suite.createTask("T1", p1.ID, nil, false)
	suite.createTask("T2", p2.ID, nil, false)
	suite.createTask("T3", p3.ID, nil, true)
	suite.createTask("T4", p2.ID, nil, false)

	filter := &Filter{PageIndex: 1, PageSize: 10, ProjectID: p2.ID}
	views, err := suite.repo.List(filter)

	suite.Require().NoError(err)
	suite.Equal(int64(2), filter.TotalCount)
	suite.Require().Len(views, 2)
	suite.Equal("T2", views[0].Title)
	suite.Equal("T4", views[1].Title)
	suite.Equal("P2", views[0].ProjectName)
}

func (suite *TaskRepositoryTestSuite) TestList_FiltersByAssigneeAndStatus() {
	project := suite.createProject("P")
	user := suite.createUser("Ada", "Lovelace")

	assigned := suite.createTask("Mine", project.ID, &user.ID, false)
	suite.createTask("Other", project.ID, nil, false)
	suite.db.Model(&models.Task{}).Where("id = ?", assigned.ID).Update("status", "InProgress")

	filter := &Filter{PageIndex: 1, PageSize: 10, UserID: user.ID, Status: "InProgress"}
	views, err := suite.repo.List(filter)

	suite.Require().NoError(err)
	suite.Equal(int64(1), filter.TotalCount)
	suite.Require().Len(views, 1)
	suite.Equal("Mine", views[0].Title)
	suite.Equal("Ada Lovelace", views[0].AssigneeName)
	suite.Equal(user.ID, views[0].AssignedTo)
}

func (suite *TaskRepositoryTestSuite) TestList_UnassignedTaskHasEmptyNameAndSentinelDate() {
	project := suite.createProject("P")
	suite.createTask("Loose", project.ID, nil, false)

	filter := &Filter{PageIndex: 1, PageSize: 10}
	views, err := suite.repo.List(filter)

	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal("", views[0].AssigneeName)
	suite.Equal(uint64(0), views[0].AssignedTo)
	suite.True(views[0].DueDate.Equal(NoDueDate))
}

func (suite *TaskRepositoryTestSuite) TestList_KeepsRealDueDate() {
	project := suite.createProject("P")
	due := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	task := suite.createTask("Dated", project.ID, nil, false)
	suite.db.Model(&models.Task{}).Where("id = ?", task.ID).Update("due_date", due)

	filter := &Filter{PageIndex: 1, PageSize: 10}
	views, err := suite.repo.List(filter)

	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.True(views[0].DueDate.Equal(due))
}

func (suite *TaskRepositoryTestSuite) TestList_TotalCountReflectsFullSetNotPage() {
	project := suite.createProject("P")
	for _, title := range []string{"A", "B", "C", "D", "E"} {
		suite.createTask(title, project.ID, nil, false)
	}

	filter := &Filter{PageIndex: 2, PageSize: 2}
	views, err := suite.repo.List(filter)

	suite.Require().NoError(err)
	suite.Equal(int64(5), filter.TotalCount)
	suite.Require().Len(views, 2)
	suite.Equal("C", views[0].Title)
	suite.Equal("D", views[1].Title)
}

func (suite *TaskRepositoryTestSuite) TestFindViewByID() {
	project := suite.createProject("P")
	user := suite.createUser("Grace", "Hopper")
	task := suite.createTask("Found", project.ID, &user.ID, false)

	view, err := suite.repo.FindViewByID(task.ID)
	suite.Require().NoError(err)
	suite.Equal("Found", view.Title)
	suite.Equal("P", view.ProjectName)
	suite.Equal("Grace Hopper", view.AssigneeName)
}

func (suite *TaskRepositoryTestSuite) TestFindViewByID_DeletedIsNotFound() {
	project := suite.createProject("P")
	task := suite.createTask("Gone", project.ID, nil, true)

	_, err := suite.repo.FindViewByID(task.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}
