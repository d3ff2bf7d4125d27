// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package source

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_CapturesStdout(t *testing.T) {
	src := NewCommand("sh", []string{"-c", `echo '{"a": 1}'`})

	got, err := src.Sample(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{\"a\": 1}\n", got)
}

func TestCommand_EmptyProgram(t *testing.T) {
	src := NewCommand("", nil)

	got, err := src.Sample(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCommand_NonZeroExitKeepsStdout(t *testing.T) {
	src := NewCommand("sh", []string{"-c", `echo '{"a": 1}'; exit 3`})

	got, err := src.Sample(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{\"a\": 1}\n", got)
}

func TestCommand_SpawnFailure(t *testing.T) {
	src := NewCommand("definitely-not-a-real-program-4712", nil)

	_, err := src.Sample(context.Background())
	assert.Error(t, err)
}

func TestCommand_StderrDiscarded(t *testing.T) {
	src := NewCommand("sh", []string{"-c", `echo noise >&2; echo '{}'`})

	got, err := src.Sample(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", got)
}

// zeroReader never runs dry, like an endpoint that streams forever.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = '0'
	}
	return len(p), nil
}

func TestReadCapped_UnderLimit(t *testing.T) {
	got, err := readCapped(strings.NewReader("hello"), MaxBodySize)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestReadCapped_AtLimit(t *testing.T) {
	got, err := readCapped(strings.NewReader("12345678"), 8)
	require.NoError(t, err)
	assert.Equal(t, "12345678", got)
}

func TestReadCapped_OverLimit(t *testing.T) {
	_, err := readCapped(zeroReader{}, 16)
	assert.ErrorContains(t, err, "exceeds the 16 B limit")

	_, err = readCapped(strings.NewReader("123456789"), 8)
	assert.ErrorContains(t, err, "limit")
}

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		uri     string
		bucket  string
		key     string
		wantErr bool
	}{
		{"s3://bucket/path/to/obj.json", "bucket", "path/to/obj.json", false},
		{"bucket/obj.json", "bucket", "obj.json", false},
		{"s3://bucket", "", "", true},
		{"s3://bucket/", "", "", true},
		{"s3:///key", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, key, err := ParseS3URI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}
