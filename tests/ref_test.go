package tests

import "testing"

func TestRefSuite(t *testing.T) {
	runSuite(t, `[
		{
			"description": "$ref to boolean schema true",
			"schema": {"$ref": "#/definitions/bool", "definitions": {"bool": true}},
			"tests": [
				{"description": "any value is valid", "data": "foo", "valid": true}
			]
		},
		{
			"description": "$ref to boolean schema false",
			"schema": {"$ref": "#/definitions/bool", "definitions": {"bool": false}},
			"tests": [
				{"description": "any value is invalid", "data": "foo", "valid": false}
			]
		},
		{
			"description": "$ref to a sibling definition by JSON pointer",
			"schema": {
				"definitions": {"str": {"type": "string"}},
				"$ref": "#/definitions/str"
			},
			"tests": [
				{"description": "a string is valid", "data": "hello", "valid": true},
				{"description": "a number is invalid", "data": 1, "valid": false}
			]
		}
	]`)
}

func TestAllOfRefSuite(t *testing.T) {
	runSuite(t, `[
		{
			"description": "allOf combined with $ref",
			"schema": {
				"definitions": {"positive": {"minimum": 0}},
				"allOf": [
					{"$ref": "#/definitions/positive"},
					{"multipleOf": 2}
				]
			},
			"tests": [
				{"description": "both pass", "data": 4, "valid": true},
				{"description": "negative fails minimum", "data": -2, "valid": false},
				{"description": "odd fails multipleOf", "data": 3, "valid": false}
			]
		}
	]`)
}
