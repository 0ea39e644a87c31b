package application

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devconnector/devconnector/internal/domain/entity"
	repo "github.com/devconnector/devconnector/internal/domain/repository"
)

func newTestProfileService(profiles *memProfileRepo, users *memUserRepo, posts *memPostRepo) *ProfileService {
	return NewProfileService(profiles, users, posts, nil, nil, 0, nil)
}

func TestParseSkills(t *testing.T) {
	require.Equal(t, []string{"Go", "Rust"}, ParseSkills("Go, Rust"))
	require.Equal(t, []string{"go", "rust"}, ParseSkills(" go ,, rust ,"))
	require.Empty(t, ParseSkills(""))
	require.Empty(t, ParseSkills(" , ,"))
	// order and duplicates are preserved
	require.Equal(t, []string{"Go", "Go"}, ParseSkills("Go,Go"))
}

func TestUpsertCreatesThenPartiallyUpdates(t *testing.T) {
	svc := newTestProfileService(newMemProfileRepo(), newMemUserRepo(), newMemPostRepo())

	p, err := svc.Upsert("user-1", ProfileInput{
		Status:   "Developer",
		Skills:   "go,rust",
		Company:  "Acme",
		Twitter:  "https://twitter.com/ada",
		Linkedin: "https://linkedin.com/in/ada",
	})
	require.NoError(t, err)
	require.Equal(t, "user-1", p.UserID)
	require.Equal(t, []string{"go", "rust"}, p.Skills)
	require.Equal(t, "Acme", p.Company)
	require.Equal(t, "https://twitter.com/ada", p.Social.Twitter)
	require.NotNil(t, p.Experience)
	require.NotNil(t, p.Education)

	// second upsert: absent fields keep their prior values
	p2, err := svc.Upsert("user-1", ProfileInput{
		Status: "Senior Developer",
		Skills: "go",
	})
	require.NoError(t, err)
	require.Equal(t, p.ID, p2.ID)
	require.Equal(t, "Senior Developer", p2.Status)
	require.Equal(t, []string{"go"}, p2.Skills)
	require.Equal(t, "Acme", p2.Company)
	require.Equal(t, "https://twitter.com/ada", p2.Social.Twitter)
	require.Equal(t, "https://linkedin.com/in/ada", p2.Social.Linkedin)
}

func TestMeAndGetByUserID(t *testing.T) {
	svc := newTestProfileService(newMemProfileRepo(), newMemUserRepo(), newMemPostRepo())

	_, err := svc.Me("user-1")
	require.ErrorIs(t, err, ErrProfileNotFound)
	_, err = svc.GetByUserID("user-1")
	require.ErrorIs(t, err, ErrProfileNotFound)

	_, err = svc.Upsert("user-1", ProfileInput{Status: "Developer", Skills: "go"})
	require.NoError(t, err)

	p, err := svc.Me("user-1")
	require.NoError(t, err)
	require.Equal(t, "Developer", p.Status)

	p, err = svc.GetByUserID("user-1")
	require.NoError(t, err)
	require.Equal(t, "user-1", p.UserID)
}

func TestExperienceAddRemove(t *testing.T) {
	svc := newTestProfileService(newMemProfileRepo(), newMemUserRepo(), newMemPostRepo())
	_, err := svc.Upsert("user-1", ProfileInput{Status: "Developer", Skills: "go"})
	require.NoError(t, err)

	p, err := svc.AddExperience("user-1", entity.Experience{Title: "Engineer", Company: "Acme", From: "2019-01-01"})
	require.NoError(t, err)
	require.Len(t, p.Experience, 1)
	require.NotEmpty(t, p.Experience[0].ID)

	// newest entry goes first
	p, err = svc.AddExperience("user-1", entity.Experience{Title: "Staff Engineer", Company: "Acme", From: "2022-01-01"})
	require.NoError(t, err)
	require.Len(t, p.Experience, 2)
	require.Equal(t, "Staff Engineer", p.Experience[0].Title)
	require.Equal(t, "Engineer", p.Experience[1].Title)

	removeID := p.Experience[1].ID
	p, err = svc.RemoveExperience("user-1", removeID)
	require.NoError(t, err)
	require.Len(t, p.Experience, 1)
	require.Equal(t, "Staff Engineer", p.Experience[0].Title)

	// unknown id is a no-op, not an error
	p, err = svc.RemoveExperience("user-1", "no-such-id")
	require.NoError(t, err)
	require.Len(t, p.Experience, 1)

	_, err = svc.RemoveExperience("user-2", removeID)
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestEducationAddRemove(t *testing.T) {
	svc := newTestProfileService(newMemProfileRepo(), newMemUserRepo(), newMemPostRepo())
	_, err := svc.Upsert("user-1", ProfileInput{Status: "Developer", Skills: "go"})
	require.NoError(t, err)

	p, err := svc.AddEducation("user-1", entity.Education{School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2015-09-01"})
	require.NoError(t, err)
	require.Len(t, p.Education, 1)
	id := p.Education[0].ID
	require.NotEmpty(t, id)

	p, err = svc.RemoveEducation("user-1", id)
	require.NoError(t, err)
	require.Empty(t, p.Education)

	// removing again is still a no-op
	p, err = svc.RemoveEducation("user-1", id)
	require.NoError(t, err)
	require.Empty(t, p.Education)
}

func TestDeleteAccountCascades(t *testing.T) {
	users := newMemUserRepo()
	profiles := newMemProfileRepo()
	posts := newMemPostRepo()
	svc := newTestProfileService(profiles, users, posts)

	owner := &entity.User{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, users.Create(owner))
	other := &entity.User{Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, users.Create(other))

	_, err := svc.Upsert(owner.ID, ProfileInput{Status: "Developer", Skills: "go"})
	require.NoError(t, err)

	require.NoError(t, posts.Create(&entity.Post{UserID: owner.ID, Name: "Ada", Text: "mine"}))
	keptPost := &entity.Post{
		UserID: other.ID,
		Name:   "Bob",
		Text:   "not mine",
		Comments: []entity.Comment{
			{ID: "c1", UserID: owner.ID, Name: "Ada", Text: "a comment by the deleted user"},
		},
	}
	require.NoError(t, posts.Create(keptPost))

	require.NoError(t, svc.DeleteAccount(owner.ID))

	_, err = users.GetByID(owner.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)
	_, err = profiles.GetByUserID(owner.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)

	remaining, err := posts.List()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, other.ID, remaining[0].UserID)
	// the deleted user's comment on someone else's post keeps its snapshot
	require.Len(t, remaining[0].Comments, 1)
	require.Equal(t, "Ada", remaining[0].Comments[0].Name)

	// deleting again: the user row is already gone
	require.ErrorIs(t, svc.DeleteAccount(owner.ID), ErrUserNotFound)
}
