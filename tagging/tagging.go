package tagging

// Keys.
const (
	Manager = "Manager"

	Name = "Name"

	DBOnboardVersion = "DBOnboardVersion"
)

// Values.
const (
	DBOnboard = "dbonboard"
)

type Map map[string]string

func Merge(maps ...Map) Map {
	merged := make(Map)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}
