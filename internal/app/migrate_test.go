package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSSLMode(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/dq", "postgres://u:p@db:5432/dq?sslmode=disable"},
		{"postgres://u:p@db:5432/dq?connect_timeout=5", "postgres://u:p@db:5432/dq?connect_timeout=5&sslmode=disable"},
		{"postgres://u:p@db:5432/dq?sslmode=require", "postgres://u:p@db:5432/dq?sslmode=require"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, withSSLMode(tc.in))
		})
	}
}
