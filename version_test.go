package helloworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullVersion(t *testing.T) {
	defer func(build, sha string) {
		Build, GitSHA = build, sha
	}(Build, GitSHA)

	Build, GitSHA = "", ""
	assert.Equal(t, Version+"+dev", FullVersion())

	GitSHA = "0123456789abcdef"
	assert.Equal(t, Version+"+dev01234567", FullVersion())

	Build = "42"
	assert.Equal(t, Version+"+b42", FullVersion())
}
