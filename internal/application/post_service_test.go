package application

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devconnector/devconnector/internal/domain/entity"
	repo "github.com/devconnector/devconnector/internal/domain/repository"
)

func newTestPostService(t *testing.T) (*PostService, *entity.User, *entity.User) {
	t.Helper()
	users := newMemUserRepo()
	ada := &entity.User{Name: "Ada", Email: "ada@example.com", AvatarURL: "https://avatars/ada.png"}
	require.NoError(t, users.Create(ada))
	bob := &entity.User{Name: "Bob", Email: "bob@example.com", AvatarURL: "https://avatars/bob.png"}
	require.NoError(t, users.Create(bob))
	return NewPostService(newMemPostRepo(), users, nil), ada, bob
}

func TestCreateSnapshotsAuthor(t *testing.T) {
	svc, ada, _ := newTestPostService(t)

	p, err := svc.Create(ada.ID, "hello world")
	require.NoError(t, err)
	require.Equal(t, ada.ID, p.UserID)
	require.Equal(t, "Ada", p.Name)
	require.Equal(t, "https://avatars/ada.png", p.AvatarURL)
	require.NotNil(t, p.Likes)
	require.NotNil(t, p.Comments)

	// renaming the author does not rewrite the snapshot
	ada.Name = "Ada Lovelace"
	require.NoError(t, svc.Users.Update(ada))
	got, err := svc.Get(p.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", got.Name)

	_, err = svc.Create("no-such-user", "hello")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestListNewestFirst(t *testing.T) {
	svc, ada, _ := newTestPostService(t)
	first, err := svc.Create(ada.ID, "first")
	require.NoError(t, err)
	second, err := svc.Create(ada.ID, "second")
	require.NoError(t, err)

	posts, err := svc.List()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, second.ID, posts[0].ID)
	require.Equal(t, first.ID, posts[1].ID)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	svc, ada, bob := newTestPostService(t)
	p, err := svc.Create(ada.ID, "mine")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(p.ID, bob.ID), ErrNotOwner)
	require.NoError(t, svc.Delete(p.ID, ada.ID))
	require.ErrorIs(t, svc.Delete(p.ID, ada.ID), ErrPostNotFound)

	_, err = svc.Get(p.ID)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestLikeUnlikeRoundTrip(t *testing.T) {
	svc, ada, bob := newTestPostService(t)
	p, err := svc.Create(ada.ID, "likeable")
	require.NoError(t, err)

	likes, err := svc.Like(p.ID, bob.ID)
	require.NoError(t, err)
	require.Equal(t, []string{bob.ID}, likes)

	// one like per user
	_, err = svc.Like(p.ID, bob.ID)
	require.ErrorIs(t, err, ErrAlreadyLiked)

	// newest like goes first
	likes, err = svc.Like(p.ID, ada.ID)
	require.NoError(t, err)
	require.Equal(t, []string{ada.ID, bob.ID}, likes)

	likes, err = svc.Unlike(p.ID, bob.ID)
	require.NoError(t, err)
	require.Equal(t, []string{ada.ID}, likes)

	_, err = svc.Unlike(p.ID, bob.ID)
	require.ErrorIs(t, err, ErrNotLiked)

	_, err = svc.Like("no-such-post", bob.ID)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommentsAddRemove(t *testing.T) {
	svc, ada, bob := newTestPostService(t)
	p, err := svc.Create(ada.ID, "discuss")
	require.NoError(t, err)

	comments, err := svc.AddComment(p.ID, bob.ID, "first!")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.NotEmpty(t, comments[0].ID)
	require.Equal(t, "Bob", comments[0].Name)
	require.Equal(t, "https://avatars/bob.png", comments[0].AvatarURL)
	require.False(t, comments[0].CreatedAt.IsZero())

	comments, err = svc.AddComment(p.ID, ada.ID, "second")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, "second", comments[0].Text)

	bobsComment := comments[1]

	// only the comment's author may remove it, even the post owner may not
	_, err = svc.RemoveComment(p.ID, bobsComment.ID, ada.ID)
	require.ErrorIs(t, err, ErrNotOwner)

	comments, err = svc.RemoveComment(p.ID, bobsComment.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "second", comments[0].Text)

	_, err = svc.RemoveComment(p.ID, bobsComment.ID, bob.ID)
	require.ErrorIs(t, err, ErrCommentNotFound)

	_, err = svc.AddComment(p.ID, "no-such-user", "hello")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthorize(t *testing.T) {
	require.NoError(t, authorize("u1", "u1"))
	require.ErrorIs(t, authorize("u1", "u2"), ErrNotOwner)
}

var _ repo.PostRepository = (*memPostRepo)(nil)
var _ repo.ProfileRepository = (*memProfileRepo)(nil)
var _ repo.UserRepository = (*memUserRepo)(nil)
