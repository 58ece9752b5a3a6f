package queryparam

import (
	"net/url"
	"strings"
)

// Parse reads a raw query string (without the leading '?').
//
// Keys of the form `name[]` and `name[index]` build sequences, `[]` appends at the next integer
// index. A later plain `name=value` replaces an earlier sequence and the other way round.
// Keys nested deeper than one bracket pair are not supported and are skipped.
// Malformed percent-escapes are kept as written.
func Parse(rawQuery string) Values {
	var v Values

	for rawQuery != "" {
		var pair string

		pair, rawQuery, _ = strings.Cut(rawQuery, "&")
		if pair == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(pair, "=")

		v.add(unescape(rawKey), unescape(rawValue))
	}

	return v
}

// FromURL parses the query of u.
func FromURL(u *url.URL) Values {
	if u == nil {
		return Values{}
	}

	return Parse(u.RawQuery)
}

func (v *Values) add(key, value string) {
	name, index, isSequence, ok := splitKey(key)
	if !ok {
		return
	}

	if !isSequence {
		v.Set(name, String(value))

		return
	}

	current, exists := v.vals[name]
	if !exists || !current.IsSequence() {
		current = Value{kind: KindSequence}
	}

	if index == "" {
		current.push(value)
	} else {
		current.put(index, value)
	}

	v.Set(name, current)
}

// splitKey breaks `name[index]` into its parts. ok is false for keys that cannot be represented.
func splitKey(key string) (name, index string, isSequence, ok bool) {
	open := strings.IndexByte(key, '[')
	if open == -1 {
		return key, "", false, key != ""
	}

	closing := strings.IndexByte(key[open:], ']')
	if closing == -1 {
		return key, "", false, true
	}

	name = key[:open]
	if name == "" {
		return "", "", false, false
	}

	rest := key[open+closing+1:]
	if strings.HasPrefix(rest, "[") {
		return "", "", false, false
	}

	return name, key[open+1 : open+closing], true, true
}

func unescape(s string) string {
	u, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}

	return u
}
