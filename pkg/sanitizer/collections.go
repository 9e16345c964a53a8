package sanitizer

import "strings"

// CleanStringSlice trims entries, drops empty ones and removes duplicates
// keeping the first occurrence.
func CleanStringSlice(slice []string) []string {
	seen := make(map[string]struct{}, len(slice))
	result := make([]string, 0, len(slice))
	for _, item := range slice {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// MapStrings applies transform to every entry of slice.
func MapStrings(slice []string, transform func(string) string) []string {
	result := make([]string, len(slice))
	for i, item := range slice {
		result[i] = transform(item)
	}
	return result
}
