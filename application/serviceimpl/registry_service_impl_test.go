package serviceimpl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hotsprings/application/serviceimpl"
	"hotsprings/domain/dto"
	"hotsprings/domain/models"
	"hotsprings/domain/services"
	"hotsprings/infrastructure/postgres"
	"hotsprings/pkg/apperrors"
)

func newTestService(t *testing.T) (services.RegistryService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, postgres.Migrate(db))

	return serviceimpl.NewRegistryService(postgres.NewTxManager(db)), db
}

func seedTags(t *testing.T, db *gorm.DB, labels ...string) {
	t.Helper()
	for _, label := range labels {
		require.NoError(t, db.Create(&models.Tag{Label: label}).Error)
	}
}

func savePerson(t *testing.T, svc services.RegistryService, name, email string) *dto.PersonView {
	t.Helper()
	saved, err := svc.SavePerson(context.Background(), &dto.PersonView{Name: name, Email: email})
	require.NoError(t, err)
	require.NotNil(t, saved.ID)
	return saved
}

func TestSavePersonCreateAssignsID(t *testing.T) {
	svc, _ := newTestService(t)

	saved, err := svc.SavePerson(context.Background(), &dto.PersonView{
		Name:  "Ann",
		Email: "ann@x.com",
	})
	require.NoError(t, err)

	require.NotNil(t, saved.ID)
	assert.NotZero(t, *saved.ID)
	assert.Equal(t, "Ann", saved.Name)
	assert.Equal(t, "ann@x.com", saved.Email)
	assert.Empty(t, saved.Locations)
}

func TestSavePersonDuplicateEmailConflict(t *testing.T) {
	svc, db := newTestService(t)
	savePerson(t, svc, "Ann", "ann@x.com")

	_, err := svc.SavePerson(context.Background(), &dto.PersonView{
		Name:  "Other Ann",
		Email: "ann@x.com",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	// The store gained no new row.
	var count int64
	require.NoError(t, db.Model(&models.Person{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSavePersonUpdateOverwritesFields(t *testing.T) {
	svc, _ := newTestService(t)
	created := savePerson(t, svc, "Ann", "ann@x.com")

	updated, err := svc.SavePerson(context.Background(), &dto.PersonView{
		ID:    created.ID,
		Name:  "Annabel",
		Email: "annabel@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, *created.ID, *updated.ID)
	assert.Equal(t, "Annabel", updated.Name)
	assert.Equal(t, "annabel@x.com", updated.Email)
}

func TestSavePersonUpdateMissingIDNotFound(t *testing.T) {
	svc, db := newTestService(t)

	id := uint(99)
	_, err := svc.SavePerson(context.Background(), &dto.PersonView{
		ID:    &id,
		Name:  "Ghost",
		Email: "ghost@x.com",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&models.Person{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListPersonsExpandsLocations(t *testing.T) {
	svc, db := newTestService(t)
	seedTags(t, db, "mud")
	owner := savePerson(t, svc, "Ann", "ann@x.com")

	_, err := svc.SaveLocation(context.Background(), *owner.ID, &dto.LocationView{
		Name: "Blue Pool",
		Tags: []string{"mud"},
	})
	require.NoError(t, err)

	views, err := svc.ListPersons(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Locations, 1)
	assert.Equal(t, "Blue Pool", views[0].Locations[0].Name)
	assert.Equal(t, []string{"mud"}, views[0].Locations[0].Tags)
}

func TestGetPersonNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetPerson(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeletePersonCascadesToLocations(t *testing.T) {
	svc, db := newTestService(t)
	owner := savePerson(t, svc, "Ann", "ann@x.com")

	first, err := svc.SaveLocation(context.Background(), *owner.ID, &dto.LocationView{Name: "Blue Pool"})
	require.NoError(t, err)
	_, err = svc.SaveLocation(context.Background(), *owner.ID, &dto.LocationView{Name: "Mud Bath"})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePerson(context.Background(), *owner.ID))

	_, err = svc.GetPerson(context.Background(), *owner.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&models.Location{}).Count(&count).Error)
	assert.Zero(t, count)

	// GetLocation on a deleted location reports the missing owner first,
	// still a NotFound either way.
	_, err = svc.GetLocation(context.Background(), *owner.ID, *first.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeletePersonMissingNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeletePerson(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeleteAllPersonsAlwaysMethodNotAllowed(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeleteAllPersons(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindMethodNotAllowed, apperrors.KindOf(err))

	// Still refused with data present.
	savePerson(t, svc, "Ann", "ann@x.com")
	err = svc.DeleteAllPersons(context.Background())
	assert.Equal(t, apperrors.KindMethodNotAllowed, apperrors.KindOf(err))
}

func TestSaveLocationUnknownTagLabelsDropped(t *testing.T) {
	svc, db := newTestService(t)
	seedTags(t, db, "mud")
	owner := savePerson(t, svc, "Ann", "ann@x.com")

	saved, err := svc.SaveLocation(context.Background(), *owner.ID, &dto.LocationView{
		Name:      "Blue Pool",
		Latitude:  10,
		Longitude: 20,
		Tags:      []string{"mud", "sulfur"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"mud"}, saved.Tags)

	// No tag row was created for the unknown label.
	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSaveLocationSetsOwner(t *testing.T) {
	svc, _ := newTestService(t)
	owner := savePerson(t, svc, "Ann", "ann@x.com")

	saved, err := svc.SaveLocation(context.Background(), *owner.ID, &dto.LocationView{
		Name:       "Blue Pool",
		Latitude:   10,
		Longitude:  20,
		County:     "Lemhi",
		Directions: "up the creek",
	})
	require.NoError(t, err)

	require.NotNil(t, saved.ID)
	require.NotNil(t, saved.Owner)
	assert.Equal(t, *owner.ID, saved.Owner.ID)
	assert.Equal(t, "Ann", saved.Owner.Name)
	assert.Equal(t, "ann@x.com", saved.Owner.Email)
	assert.Equal(t, "Lemhi", saved.County)
}

func TestSaveLocationOwnerMissingNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SaveLocation(context.Background(), 5, &dto.LocationView{Name: "Blue Pool"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestSaveLocationUpdateMissingIDNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	owner := savePerson(t, svc, "Ann", "ann@x.com")

	id := uint(12)
	_, err := svc.SaveLocation(context.Background(), *owner.ID, &dto.LocationView{
		ID:   &id,
		Name: "Blue Pool",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestSaveLocationUpdateAppendsTags(t *testing.T) {
	svc, db := newTestService(t)
	seedTags(t, db, "mud", "sulfur")
	owner := savePerson(t, svc, "Ann", "ann@x.com")

	created, err := svc.SaveLocation(context.Background(), *owner.ID, &dto.LocationView{
		Name: "Blue Pool",
		Tags: []string{"mud"},
	})
	require.NoError(t, err)

	updated, err := svc.SaveLocation(context.Background(), *owner.ID, &dto.LocationView{
		ID:   created.ID,
		Name: "Blue Pool",
		Tags: []string{"sulfur"},
	})
	require.NoError(t, err)

	// Wiring is additive: the earlier tag is still attached.
	assert.ElementsMatch(t, []string{"mud", "sulfur"}, updated.Tags)
}

func TestSaveLocationReassignsOwner(t *testing.T) {
	svc, _ := newTestService(t)
	first := savePerson(t, svc, "Ann", "ann@x.com")
	second := savePerson(t, svc, "Bob", "bob@x.com")

	created, err := svc.SaveLocation(context.Background(), *first.ID, &dto.LocationView{Name: "Blue Pool"})
	require.NoError(t, err)

	moved, err := svc.SaveLocation(context.Background(), *second.ID, &dto.LocationView{
		ID:   created.ID,
		Name: "Blue Pool",
	})
	require.NoError(t, err)
	require.NotNil(t, moved.Owner)
	assert.Equal(t, *second.ID, moved.Owner.ID)

	// The previous owner can no longer retrieve it.
	_, err = svc.GetLocation(context.Background(), *first.ID, *created.ID)
	assert.Equal(t, apperrors.KindIllegalState, apperrors.KindOf(err))
}

func TestGetLocationWrongOwnerIllegalState(t *testing.T) {
	svc, _ := newTestService(t)
	ann := savePerson(t, svc, "Ann", "ann@x.com")
	bob := savePerson(t, svc, "Bob", "bob@x.com")

	created, err := svc.SaveLocation(context.Background(), *ann.ID, &dto.LocationView{Name: "Blue Pool"})
	require.NoError(t, err)

	_, err = svc.GetLocation(context.Background(), *bob.ID, *created.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindIllegalState, apperrors.KindOf(err))
}

func TestGetLocationMissingIDsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ann := savePerson(t, svc, "Ann", "ann@x.com")

	_, err := svc.GetLocation(context.Background(), 99, 1)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	_, err = svc.GetLocation(context.Background(), *ann.ID, 99)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestGetLocationRoundTrip(t *testing.T) {
	svc, db := newTestService(t)
	seedTags(t, db, "mud")
	ann := savePerson(t, svc, "Ann", "ann@x.com")

	created, err := svc.SaveLocation(context.Background(), *ann.ID, &dto.LocationView{
		Name:      "Blue Pool",
		Latitude:  10,
		Longitude: 20,
		Tags:      []string{"mud", "sulfur"},
	})
	require.NoError(t, err)

	got, err := svc.GetLocation(context.Background(), *ann.ID, *created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created.ID, *got.ID)
	assert.Equal(t, "Blue Pool", got.Name)
	assert.EqualValues(t, 10, got.Latitude)
	assert.EqualValues(t, 20, got.Longitude)
	assert.Equal(t, []string{"mud"}, got.Tags)
	require.NotNil(t, got.Owner)
	assert.Equal(t, *ann.ID, got.Owner.ID)
}
