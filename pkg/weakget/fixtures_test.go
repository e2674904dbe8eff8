package weakget

import "strings"

// sentinel default, compared by identity
var def = &struct{ name string }{name: "default"}

type attrs struct {
	Attr any
}

type span struct {
	Start *int
	Stop  *int
}

type bounds struct {
	Start int
	Stop  int
}

type word string

func (w word) Upper() string {
	return strings.ToUpper(string(w))
}

type dict map[string]any

func (d dict) Pop(key string, fallback any) any {
	v, ok := d[key]
	if !ok {
		return fallback
	}
	delete(d, key)
	return v
}

func intPtr(i int) *int {
	return &i
}
