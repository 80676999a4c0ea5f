package soundcloud

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Param is a single request parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered set of request parameters.
//
// Keys keep the position of their first insertion; setting an existing key replaces its value.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams builds a Params from pairs in the given order.
func NewParams(pairs ...Param) Params {
	p := Params{values: make(map[string]string, len(pairs))}
	for _, kv := range pairs {
		p.set(kv.Key, kv.Value)
	}
	return p
}

func (p *Params) set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Merge returns a copy of p with pairs merged over it.
func (p Params) Merge(pairs ...Param) Params {
	out := p.clone()
	for _, kv := range pairs {
		out.set(kv.Key, kv.Value)
	}
	return out
}

// Except returns a copy of p without the named keys.
func (p Params) Except(keys ...string) Params {
	skip := make(map[string]bool, len(keys))
	for _, k := range keys {
		skip[k] = true
	}

	out := Params{values: make(map[string]string, len(p.keys))}
	for _, k := range p.keys {
		if !skip[k] {
			out.set(k, p.values[k])
		}
	}
	return out
}

func (p Params) clone() Params {
	out := Params{
		keys:   make([]string, len(p.keys), len(p.keys)+4),
		values: make(map[string]string, len(p.keys)+4),
	}
	copy(out.keys, p.keys)
	for k, v := range p.values {
		out.values[k] = v
	}
	return out
}

// Get returns the value for key and whether it is present.
func (p Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Len returns the number of parameters.
func (p Params) Len() int {
	return len(p.keys)
}

// Keys returns the keys in insertion order.
func (p Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Encode serializes the parameters in insertion order using form encoding.
//
// Unlike [url.Values.Encode], keys are not sorted.
func (p Params) Encode() string {
	var sb strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.values[k]))
	}
	return sb.String()
}

// ToNestedFormFields rewrites each key k of fields to prefix[k], the nested field encoding used
// by the SoundCloud API for resource attributes. Pairs are returned sorted by key.
func ToNestedFormFields(prefix string, fields map[string]string) []Param {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Param, 0, len(keys))
	for _, k := range keys {
		out = append(out, Param{Key: fmt.Sprintf("%s[%s]", prefix, k), Value: fields[k]})
	}
	return out
}
