package availability

const wwwPrefix = "www."

// RedundantCNAMEs returns every key D (other than the literal "www") that has
// a "www."+D counterpart among keys. Order follows keys.
func RedundantCNAMEs(keys []string) []string {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	var out []string
	for _, k := range keys {
		if k == "www" {
			continue
		}
		if _, ok := set[wwwPrefix+k]; ok {
			out = append(out, k)
		}
	}
	return out
}
