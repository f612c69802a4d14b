package expr

// Env binds identifier names to values.
type Env map[string]float64

// MakeEnv zips identifiers with the values of an input point. Extra names or
// values on either side are ignored.
func MakeEnv(identifiers []string, point []float64) Env {
	env := make(Env, len(identifiers))
	for i, id := range identifiers {
		if i >= len(point) {
			break
		}
		env[id] = point[i]
	}
	return env
}
