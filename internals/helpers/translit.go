package helper

import "strings"

// Cyrillic to Latin mapping used when deriving login names from
// teacher/parent/student full names.
var rusToLat = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "i", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch", 'ш': "sh", 'щ': "sch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

// ToLatin lowercases the input and transliterates Cyrillic letters,
// keeping ASCII letters and digits, mapping spaces and dashes to "-".
// Everything else is dropped.
func ToLatin(text string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(text) {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == ' ' || ch == '-':
			b.WriteByte('-')
		default:
			if lat, ok := rusToLat[ch]; ok {
				b.WriteString(lat)
			}
		}
	}
	return b.String()
}

// BuildBaseUsername derives "lastname_f" from a person's name.
func BuildBaseUsername(lastName, firstName string) string {
	ln := ToLatin(lastName)
	if ln == "" {
		ln = "user"
	}
	fi := ""
	if firstName != "" {
		fi = ToLatin(firstName[:1])
		if fi == "" {
			// multibyte first letter
			for _, r := range firstName {
				fi = ToLatin(string(r))
				break
			}
		}
	}
	return strings.Trim(ln+"_"+fi, "_")
}

// SanitizeUsername trims a base username to 18 chars, falling back to "user".
func SanitizeUsername(base string) string {
	base = strings.Trim(base, "-_")
	if len(base) > 18 {
		base = base[:18]
	}
	if base == "" {
		base = "user"
	}
	return base
}
