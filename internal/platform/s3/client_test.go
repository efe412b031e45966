package s3

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiError struct {
	code string
}

func (e *apiError) Error() string                 { return e.code }
func (e *apiError) ErrorCode() string             { return e.code }
func (e *apiError) ErrorMessage() string          { return e.code }
func (e *apiError) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func TestIsBucketAlreadyOwnedByYou(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"typed owned-by-you", &types.BucketAlreadyOwnedByYou{}, true},
		{"typed already-exists", &types.BucketAlreadyExists{}, true},
		{"api code owned-by-you", &apiError{code: "BucketAlreadyOwnedByYou"}, true},
		{"api code already-exists", &apiError{code: "BucketAlreadyExists"}, true},
		{"unrelated api code", &apiError{code: "AccessDenied"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isBucketAlreadyOwnedByYou(tt.err))
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"typed no-such-bucket", &types.NoSuchBucket{}, true},
		{"typed not-found", &types.NotFound{}, true},
		{"api code 404", &apiError{code: "404"}, true},
		{"api code not-found", &apiError{code: "NotFound"}, true},
		{"unrelated api code", &apiError{code: "SlowDown"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNotFoundError(tt.err))
		})
	}
}

func TestFromEnv_UnsetEndpointIsOptional(t *testing.T) {
	t.Setenv(EnvEndpoint, "")

	client, err := FromEnv()
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestFromEnv_EndpointWithoutKeysFails(t *testing.T) {
	t.Setenv(EnvEndpoint, "https://backup.example.com")
	t.Setenv(EnvAccessKey, "")
	t.Setenv(EnvSecretKey, "")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_Complete(t *testing.T) {
	t.Setenv(EnvEndpoint, "https://backup.example.com")
	t.Setenv(EnvAccessKey, "key")
	t.Setenv(EnvSecretKey, "secret")
	t.Setenv(EnvRegion, "")

	client, err := FromEnv()
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "auto", client.region)
}
