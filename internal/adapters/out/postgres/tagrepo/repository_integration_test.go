package tagrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/tagrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/tag"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TagRepositoryIntegrationTestSuite provides integration tests for TagRepository
// using PostgreSQL containers to verify database persistence behavior.
type TagRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *tagrepo.GormTagRepository
}

func (suite *TagRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&tagrepo.TagDTO{}))
}

func (suite *TagRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE verification_tags").Error)
	suite.repository = tagrepo.NewGormTagRepository(suite.db)
}

func (suite *TagRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TagRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	pending, err := tag.NewTag("RF-001", orderID, "blue shirt")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	retrieved, err := suite.repository.Get(ctx, "RF-001")
	suite.Require().NoError(err)
	suite.Equal("RF-001", retrieved.TagID())
	suite.True(orderID.IsEqual(retrieved.OrderID()))
	suite.Equal("blue shirt", retrieved.ItemDescription())
	suite.Equal(tag.Pending, retrieved.Status())
	suite.Nil(retrieved.VerifiedAt())
}

func (suite *TagRepositoryIntegrationTestSuite) TestGet_UnknownTag_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), "RF-MISSING")
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TagRepositoryIntegrationTestSuite) TestUpdate_PersistsVerification() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	pending, err := tag.NewTag("RF-002", orderID, "wool coat")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	verifiedAt := time.Now().UTC().Truncate(time.Microsecond)
	suite.True(pending.Verify(verifiedAt, "intact, no stains"))
	suite.Require().NoError(suite.repository.Update(ctx, pending))

	retrieved, err := suite.repository.Get(ctx, "RF-002")
	suite.Require().NoError(err)
	suite.Equal(tag.Verified, retrieved.Status())
	suite.Require().NotNil(retrieved.VerifiedAt())
	suite.True(verifiedAt.Equal(*retrieved.VerifiedAt()))
	suite.Equal("intact, no stains", retrieved.VerificationNotes())
}

func (suite *TagRepositoryIntegrationTestSuite) TestUpdate_RacingVerification_FirstWriteWins() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	pending, err := tag.NewTag("RF-003", orderID, "silk scarf")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	// two staff members pick up the same pending tag
	first, err := suite.repository.Get(ctx, "RF-003")
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, "RF-003")
	suite.Require().NoError(err)

	firstVerifiedAt := time.Now().UTC().Truncate(time.Microsecond)
	suite.True(first.Verify(firstVerifiedAt, "checked at intake desk"))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// the second verification lands after the first committed; it reports
	// success but must not overwrite the original verification record
	laterVerifiedAt := firstVerifiedAt.Add(2 * time.Minute)
	suite.True(second.Verify(laterVerifiedAt, "checked at sorting station"))
	suite.Require().NoError(suite.repository.Update(ctx, second))

	retrieved, err := suite.repository.Get(ctx, "RF-003")
	suite.Require().NoError(err)
	suite.Equal(tag.Verified, retrieved.Status())
	suite.Require().NotNil(retrieved.VerifiedAt())
	suite.True(firstVerifiedAt.Equal(*retrieved.VerifiedAt()))
	suite.Equal("checked at intake desk", retrieved.VerificationNotes())
}

func (suite *TagRepositoryIntegrationTestSuite) TestUpdate_UnknownTag_ReturnsNotFoundError() {
	ctx := context.Background()

	unknown, err := tag.NewTag("RF-GHOST", kernel.NewUUID(), "phantom sock")
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, unknown)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TagRepositoryIntegrationTestSuite) TestGetAllForOrder_ReturnsTagsInIDOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	otherOrderID := kernel.NewUUID()

	for _, tagID := range []string{"RF-030", "RF-010", "RF-020"} {
		t, err := tag.NewTag(tagID, orderID, "item for "+tagID)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, t))
	}
	other, err := tag.NewTag("RF-999", otherOrderID, "someone else's jacket")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, other))

	tags, err := suite.repository.GetAllForOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(tags, 3)
	suite.Equal("RF-010", tags[0].TagID())
	suite.Equal("RF-020", tags[1].TagID())
	suite.Equal("RF-030", tags[2].TagID())
}

func (suite *TagRepositoryIntegrationTestSuite) TestGetAllForOrder_NoTags_ReturnsEmptySlice() {
	tags, err := suite.repository.GetAllForOrder(context.Background(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(tags)
}

func TestTagRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TagRepositoryIntegrationTestSuite))
}
