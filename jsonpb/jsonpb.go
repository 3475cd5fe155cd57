// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonpb converts between json.Value trees and the protobuf
// well-known JSON types google.protobuf.Value, Struct and ListValue, and
// between json.Value trees and arbitrary messages in their JSON mapping.
package jsonpb

import (
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/golang/jsonvalue/internal/errors"
	"github.com/golang/jsonvalue/json"
)

// ToProto converts v to a google.protobuf.Value. Non-finite numbers have no
// JSON representation and are rejected.
func ToProto(v json.Value) (*structpb.Value, error) {
	switch v.Type() {
	case json.Null:
		return structpb.NewNullValue(), nil
	case json.Bool:
		b, _ := v.Bool()
		return structpb.NewBoolValue(b), nil
	case json.Number:
		n, _ := v.Number()
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, errors.New("invalid number value: %v", n)
		}
		return structpb.NewNumberValue(n), nil
	case json.String:
		s, _ := v.Text()
		return structpb.NewStringValue(s), nil
	case json.Array:
		l, _ := v.List()
		lv, err := ToListValue(l)
		if err != nil {
			return nil, err
		}
		return structpb.NewListValue(lv), nil
	case json.Object:
		m, _ := v.Map()
		s, err := ToStruct(m)
		if err != nil {
			return nil, err
		}
		return structpb.NewStructValue(s), nil
	default:
		return nil, errors.New("invalid value type %v", v.Type())
	}
}

// ToListValue converts the elements of l to a google.protobuf.ListValue.
func ToListValue(l *json.List) (*structpb.ListValue, error) {
	lv := &structpb.ListValue{Values: make([]*structpb.Value, 0, l.Len())}
	for _, e := range l.All() {
		pv, err := ToProto(*e)
		if err != nil {
			return nil, err
		}
		lv.Values = append(lv.Values, pv)
	}
	return lv, nil
}

// ToStruct converts the members of m to a google.protobuf.Struct. Member
// order is not preserved since Struct fields form a map.
func ToStruct(m *json.Map) (*structpb.Struct, error) {
	s := &structpb.Struct{Fields: make(map[string]*structpb.Value, m.Len())}
	for k, e := range m.All() {
		pv, err := ToProto(*e)
		if err != nil {
			return nil, err
		}
		s.Fields[k] = pv
	}
	return s, nil
}

// FromProto converts a google.protobuf.Value to a json.Value. Struct fields
// become object members ordered by key.
func FromProto(pv *structpb.Value) (json.Value, error) {
	switch k := pv.GetKind().(type) {
	case *structpb.Value_NullValue:
		return json.Value{}, nil
	case *structpb.Value_BoolValue:
		return json.ValueOfBool(k.BoolValue), nil
	case *structpb.Value_NumberValue:
		if math.IsNaN(k.NumberValue) || math.IsInf(k.NumberValue, 0) {
			return json.Value{}, errors.New("invalid number value: %v", k.NumberValue)
		}
		return json.ValueOfNumber(k.NumberValue), nil
	case *structpb.Value_StringValue:
		return json.ValueOfString(k.StringValue), nil
	case *structpb.Value_ListValue:
		return FromListValue(k.ListValue)
	case *structpb.Value_StructValue:
		return FromStruct(k.StructValue)
	default:
		return json.Value{}, errors.New("google.protobuf.Value: none of the variants is set")
	}
}

// FromListValue converts a google.protobuf.ListValue to an Array value.
func FromListValue(lv *structpb.ListValue) (json.Value, error) {
	vs := make([]json.Value, 0, len(lv.GetValues()))
	for _, pv := range lv.GetValues() {
		v, err := FromProto(pv)
		if err != nil {
			return json.Value{}, err
		}
		vs = append(vs, v)
	}
	return json.ValueOfList(vs...), nil
}

// FromStruct converts a google.protobuf.Struct to an Object value with
// members ordered by key.
func FromStruct(s *structpb.Struct) (json.Value, error) {
	fields := make(map[string]json.Value, len(s.GetFields()))
	for k, pv := range s.GetFields() {
		v, err := FromProto(pv)
		if err != nil {
			return json.Value{}, err
		}
		fields[k] = v
	}
	return json.ValueOf(fields), nil
}

// FromMessage returns the JSON mapping of m as a json.Value.
func FromMessage(m proto.Message) (json.Value, error) {
	b, err := protojson.Marshal(m)
	if err != nil {
		return json.Value{}, err
	}
	return json.Unmarshal(b)
}

// ToMessage populates m from v, which must follow the JSON mapping of m's
// message type. Fields already set in m are reset first.
func ToMessage(v json.Value, m proto.Message) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return protojson.Unmarshal(b, m)
}
