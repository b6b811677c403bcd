package core

import "github.com/ygrebnov/autobind/object"

// FilterKeys reduces a discovered method set to the keys to actually bind.
// Filters apply in a fixed order, each on the previous step's output: the
// universal-root exclusion set (string keys only), then Include (set
// membership), then Exclude, then Pattern. A pattern drops every symbol key
// and keeps only matching string keys.
func (Engine) FilterKeys(keys []object.Key, cfg Config) []object.Key {
	out := make([]object.Key, 0, len(keys))
	for _, k := range keys {
		if !isBuiltinRootMethod(k) {
			out = append(out, k)
		}
	}
	if cfg.Include != nil {
		include := keySet(cfg.Include)
		out = keep(out, func(k object.Key) bool {
			_, ok := include[k]
			return ok
		})
	}
	if cfg.Exclude != nil {
		exclude := keySet(cfg.Exclude)
		out = keep(out, func(k object.Key) bool {
			_, ok := exclude[k]
			return !ok
		})
	}
	if cfg.Pattern != nil {
		out = keep(out, func(k object.Key) bool {
			n, ok := k.(object.Name)
			return ok && cfg.Pattern.MatchString(string(n))
		})
	}
	return out
}

func keySet(keys []object.Key) map[object.Key]struct{} {
	s := make(map[object.Key]struct{}, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func keep(keys []object.Key, pred func(object.Key) bool) []object.Key {
	out := keys[:0]
	for _, k := range keys {
		if pred(k) {
			out = append(out, k)
		}
	}
	return out
}
