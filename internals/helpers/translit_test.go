package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLatin(t *testing.T) {
	assert.Equal(t, "ivanov", ToLatin("Иванов"))
	assert.Equal(t, "schukin", ToLatin("Щукин"))
	assert.Equal(t, "petrov-vodkin", ToLatin("Петров Водкин"))
	assert.Equal(t, "smith", ToLatin("Smith"))
	assert.Equal(t, "", ToLatin("!!!"))
}

func TestBuildBaseUsername(t *testing.T) {
	assert.Equal(t, "ivanov_a", BuildBaseUsername("Иванов", "Алексей"))
	assert.Equal(t, "smith_j", BuildBaseUsername("Smith", "John"))
	assert.Equal(t, "user_a", BuildBaseUsername("", "Анна"))
	assert.Equal(t, "ivanov", BuildBaseUsername("Иванов", ""))
}

func TestSanitizeUsername(t *testing.T) {
	assert.Equal(t, "user", SanitizeUsername(""))
	assert.Equal(t, "ivanov_a", SanitizeUsername("ivanov_a"))

	long := SanitizeUsername("verylonglastnamehere_x")
	assert.LessOrEqual(t, len(long), 18)
}

func TestRandomPasswordLengthAndCharset(t *testing.T) {
	pw := RandomPassword(10)
	assert.Len(t, pw, 10)
	for _, ch := range pw {
		ok := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
		assert.True(t, ok, "unexpected char %q", ch)
	}
}
