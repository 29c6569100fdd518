package hdfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veraek/hdfsbridge/pkg/hdfs"
)

// TestParseURI_Table verifies URI splitting into endpoints and paths.
func TestParseURI_Table(t *testing.T) {
	t.Parallel()

	fallback := hdfs.Endpoint{Scheme: hdfs.SchemeHdfs, Host: "fallback", Port: 8020}

	testCases := []struct {
		name         string
		uri          string
		wantEndpoint hdfs.Endpoint
		wantPath     string
		wantErr      error
	}{
		{
			name:         "Success_HdfsURI",
			uri:          "hdfs://namenode:9000/user/data/file.bin",
			wantEndpoint: hdfs.Endpoint{Scheme: hdfs.SchemeHdfs, Host: "namenode", Port: 9000},
			wantPath:     "/user/data/file.bin",
		},
		{
			name:         "Success_HdfsURIWithUser",
			uri:          "hdfs://hadoop@namenode:9000/file",
			wantEndpoint: hdfs.Endpoint{Scheme: hdfs.SchemeHdfs, Host: "namenode", Port: 9000, User: "hadoop"},
			wantPath:     "/file",
		},
		{
			name:         "Success_HdfsURIWithoutPort",
			uri:          "hdfs://namenode/file",
			wantEndpoint: hdfs.Endpoint{Scheme: hdfs.SchemeHdfs, Host: "namenode"},
			wantPath:     "/file",
		},
		{
			name:         "Success_FileURI",
			uri:          "file:///tmp/file.bin",
			wantEndpoint: hdfs.Local(),
			wantPath:     "/tmp/file.bin",
		},
		{
			name:         "Success_BarePathUsesFallback",
			uri:          "/user/data/file.bin",
			wantEndpoint: fallback,
			wantPath:     "/user/data/file.bin",
		},
		{
			name:    "Error_EmptyURI",
			uri:     "",
			wantErr: hdfs.ErrInvalidEndpoint,
		},
		{
			name:    "Error_FileURIWithHost",
			uri:     "file://host/tmp/file.bin",
			wantErr: hdfs.ErrInvalidEndpoint,
		},
		{
			name:    "Error_UnsupportedScheme",
			uri:     "ftp://host/file",
			wantErr: hdfs.ErrInvalidEndpoint,
		},
		{
			name:    "Error_MissingHost",
			uri:     "hdfs:///file",
			wantErr: hdfs.ErrInvalidEndpoint,
		},
		{
			name:    "Error_InvalidPort",
			uri:     "hdfs://namenode:99999/file",
			wantErr: hdfs.ErrInvalidEndpoint,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			endpoint, path, err := hdfs.ParseURI(tc.uri, fallback)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantEndpoint, endpoint)
			assert.Equal(t, tc.wantPath, path)
		})
	}
}

// TestEndpointKey_Success verifies registry key derivation.
func TestEndpointKey_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "file://", hdfs.Local().Key())
	assert.Equal(t, "hdfs://namenode:9000",
		hdfs.Endpoint{Scheme: hdfs.SchemeHdfs, Host: "namenode", Port: 9000}.Key())
	assert.Equal(t, "hdfs://hadoop@namenode:9000",
		hdfs.Endpoint{Scheme: hdfs.SchemeHdfs, Host: "namenode", Port: 9000, User: "hadoop"}.Key())
}
