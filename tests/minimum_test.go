package tests

import "testing"

func TestMinimumSuite(t *testing.T) {
	runSuite(t, `[
		{
			"description": "minimum validation",
			"schema": {"minimum": 1.1},
			"tests": [
				{"description": "above the minimum is valid", "data": 2.6, "valid": true},
				{"description": "boundary point is valid", "data": 1.1, "valid": true},
				{"description": "below the minimum is invalid", "data": 0.6, "valid": false},
				{"description": "ignores non-numbers", "data": "x", "valid": true}
			]
		},
		{
			"description": "minimum validation with signed integer",
			"schema": {"minimum": -2},
			"tests": [
				{"description": "negative above the minimum is valid", "data": -1, "valid": true},
				{"description": "negative below the minimum is invalid", "data": -3, "valid": false},
				{"description": "larger than minimum is valid", "data": 0, "valid": true}
			]
		}
	]`)
}

func TestExclusiveMinimumSuite(t *testing.T) {
	runSuite(t, `[
		{
			"description": "exclusiveMinimum validation",
			"schema": {"exclusiveMinimum": 1.1},
			"tests": [
				{"description": "above the exclusiveMinimum is valid", "data": 1.2, "valid": true},
				{"description": "boundary point is invalid", "data": 1.1, "valid": false},
				{"description": "below the exclusiveMinimum is invalid", "data": 0.6, "valid": false}
			]
		}
	]`)
}
