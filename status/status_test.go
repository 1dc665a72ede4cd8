package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReason(t *testing.T) {
	assert.Equal(t, "OK", OK.Reason())
	assert.Equal(t, "Not Found", NotFound.Reason())
	assert.Equal(t, "I'm a teapot", ImATeapot.Reason())
	assert.Equal(t, "", Code(299).Reason())
}

func TestClass(t *testing.T) {
	testCases := []struct {
		code  Code
		class Class
	}{
		{Continue, Informational},
		{OK, Success},
		{NoContent, Success},
		{Found, Redirection},
		{NotFound, ClientError},
		{InternalServerError, ServerError},
		{Code(99), Unknown},
		{Code(600), Unknown},
		{Code(0), Unknown},
	}

	for _, tc := range testCases {
		t.Run(tc.code.String(), func(t *testing.T) {
			assert.Equal(t, tc.class, tc.code.Class())
		})
	}
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "client error", ClientError.String())
	assert.Equal(t, "unknown", Class(42).String())
}

func TestValid(t *testing.T) {
	assert.True(t, OK.Valid())
	assert.True(t, NetworkAuthenticationRequired.Valid())
	assert.False(t, Code(299).Valid())
	assert.False(t, Code(-1).Valid())
}

func TestAllowsBody(t *testing.T) {
	assert.True(t, OK.AllowsBody())
	assert.True(t, NotFound.AllowsBody())
	assert.False(t, Continue.AllowsBody())
	assert.False(t, NoContent.AllowsBody())
	assert.False(t, NotModified.AllowsBody())
}

func TestString(t *testing.T) {
	assert.Equal(t, "200 OK", OK.String())
	assert.Equal(t, "418 I'm a teapot", ImATeapot.String())
	assert.Equal(t, "299", Code(299).String())
}
