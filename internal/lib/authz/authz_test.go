package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name string
		role string
		want bool
	}{
		{"admin role", "admin", true},
		{"user role", "user", false},
		{"empty role", "", false},
		{"case sensitive", "Admin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAdmin(tt.role))
		})
	}
}

func TestIsSelf(t *testing.T) {
	tests := []struct {
		name    string
		sub     string
		ownerID string
		want    bool
	}{
		{"equal numeric ids", "5", "5", true},
		{"different numeric ids", "5", "6", false},
		{"leading zero normalized", "07", "7", true},
		{"numeric vs padded", "42", "042", true},
		{"non-numeric equal", "abc", "abc", true},
		{"non-numeric different", "abc", "abd", false},
		{"empty sub", "", "", false},
		{"empty owner", "5", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSelf(tt.sub, tt.ownerID))
		})
	}
}

func TestCanActOnSelfOrAdmin(t *testing.T) {
	tests := []struct {
		name    string
		sub     string
		role    string
		ownerID string
		want    bool
	}{
		{"owner", "5", "user", "5", true},
		{"admin on foreign record", "1", "admin", "5", true},
		{"stranger", "2", "user", "5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanActOnSelfOrAdmin(tt.sub, tt.role, tt.ownerID))
		})
	}
}

func TestCanListAllUsers(t *testing.T) {
	assert.True(t, CanListAllUsers("admin"))
	assert.False(t, CanListAllUsers("user"))
	assert.False(t, CanListAllUsers(""))
}

func TestCanViewEmail(t *testing.T) {
	tests := []struct {
		name    string
		sub     string
		role    string
		ownerID string
		want    bool
	}{
		{"owner sees own email", "5", "user", "5", true},
		{"admin sees any email", "1", "admin", "5", true},
		{"stranger never sees email", "2", "user", "5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanViewEmail(tt.sub, tt.role, tt.ownerID))
		})
	}
}
