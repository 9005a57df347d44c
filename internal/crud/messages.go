package crud

import "strings"

// titleCase turns a column name into a human-readable label:
// "postal_code" -> "Postal code".
func titleCase(field string) string {
	field = strings.ReplaceAll(field, "_", " ")
	if field == "" {
		return "Field"
	}

	return strings.ToUpper(field[:1]) + field[1:]
}

// fieldMessage picks the caller-facing reason for a failed validation tag.
func fieldMessage(field, tag string) string {
	switch tag {
	case "required":
		return titleCase(field) + " is required"
	case "email":
		return "Invalid email"
	default:
		return "Invalid " + strings.ToLower(titleCase(field))
	}
}
