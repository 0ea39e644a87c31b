package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&sample{})
	require.Error(t, err)

	details := ToDetails(err)
	require.Equal(t, "is required", details["email"])
	require.Equal(t, "is required", details["password"])

	err = binding.Validator.ValidateStruct(&sample{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	details = ToDetails(err)
	require.Equal(t, "must be a valid email", details["email"])
	require.Equal(t, "must be at least 6 characters", details["password"])
}

func TestToDetailsNil(t *testing.T) {
	require.Nil(t, ToDetails(nil))
}
