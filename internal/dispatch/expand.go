package dispatch

import "os"

// ExpandVars substitutes the known variables in template. References to
// anything else, such as $HOME or $1, are left for the shell.
func ExpandVars(template string, vars map[string]string) string {
	return os.Expand(template, func(key string) string {
		if v, ok := vars[key]; ok {
			return v
		}
		return "${" + key + "}"
	})
}
