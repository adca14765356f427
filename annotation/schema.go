package annotation

// dumpSchema validates the analyzer dump before any class is declared.
// Structural errors are cheaper to report here, with JSON pointers, than
// halfway through registry binding.
const dumpSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["classes"],
  "properties": {
    "classes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "bases": {
            "type": "array",
            "items": {"type": "string", "minLength": 1}
          },
          "polymorphic": {"type": "boolean"},
          "blanks": {
            "type": "array",
            "items": {"type": "string", "pattern": "^_:"}
          },
          "triples": {"$ref": "#/definitions/triples"},
          "path": {
            "type": "object",
            "additionalProperties": false,
            "properties": {
              "uid": {"type": "string"},
              "template": {"type": "string"},
              "subpath": {"type": "string"},
              "absolute": {"type": "boolean"}
            }
          },
          "members": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name"],
              "additionalProperties": false,
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "triples": {"$ref": "#/definitions/triples"},
                "path": {"type": "string"},
                "path_absolute": {"type": "boolean"},
                "container": {"type": "boolean"},
                "optional": {"type": "boolean"},
                "value_class": {"type": "string"}
              }
            }
          }
        }
      }
    }
  },
  "definitions": {
    "triples": {
      "type": "array",
      "items": {
        "type": "array",
        "items": {"type": "string", "minLength": 1},
        "minItems": 3,
        "maxItems": 3
      }
    }
  }
}`
