package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAppName(t *testing.T) {
	tests := []struct {
		name    string
		app     string
		wantErr bool
	}{
		{"simple name", "cookie_lover", false},
		{"single word", "catalog", false},
		{"leading underscore", "_private", false},
		{"empty", "", true},
		{"hyphenated", "cookie-lover", true},
		{"leading digit", "1cookie", true},
		{"python keyword", "class", true},
		{"spaces", "cookie lover", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAppName(tt.app)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRepoName(t *testing.T) {
	tests := []struct {
		name    string
		repo    string
		wantErr bool
	}{
		{"underscored", "cookie_repo", false},
		{"hyphenated", "cookie-repo", false},
		{"empty", "", true},
		{"leading digit", "1repo", true},
		{"leading underscore", "_repo", true},
		{"dots", "cookie.repo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRepoName(tt.repo)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateModelName(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		wantErr bool
	}{
		{"capwords", "ChocolateChip", false},
		{"single word", "Zimsterne", false},
		{"empty", "", true},
		{"lowercase", "chocolateChip", true},
		{"hyphenated", "Chocolate-Chip", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModelName(tt.model)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Params{AppName: "cookie_lover", RepoName: "cookie_repo"}
	assert.NoError(t, Validate(valid))

	withModels := Params{AppName: "cookie_lover", RepoName: "cookie_repo", Models: "ChocolateChip,Zimsterne"}
	assert.NoError(t, Validate(withModels))

	badModel := Params{AppName: "cookie_lover", RepoName: "cookie_repo", Models: "chocolate_chip"}
	assert.Error(t, Validate(badModel))

	badLicense := Params{AppName: "cookie_lover", RepoName: "cookie_repo", OpenSourceLicense: "WTFPL"}
	assert.Error(t, Validate(badLicense))
}

func TestCapWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cookie_lover", "CookieLover"},
		{"catalog", "Catalog"},
		{"a_b_c", "ABC"},
		{"double__underscore", "DoubleUnderscore"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CapWords(tt.in))
		})
	}
}

func TestGetLicense(t *testing.T) {
	l, err := GetLicense("AGPL 3.0")
	assert.NoError(t, err)
	assert.Equal(t, "GNU AFFERO GENERAL PUBLIC LICENSE", l.Marker)
	assert.True(t, l.Default)

	_, err = GetLicense("MIT")
	assert.Error(t, err)
}
