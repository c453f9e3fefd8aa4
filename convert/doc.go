// Package convert turns analyzed Max patches into SuperCollider objects.
//
// ConvertObject maps a single box to its sclang counterpart; Convert runs a
// whole patch through graph analysis, spatial analysis, and per-object
// conversion, producing a Project. Objects without a dedicated mapping
// degrade to a placeholder that keeps the source name, so a conversion run
// never fails on an unknown object. The convert/wfs, convert/vbap, and
// convert/hoa subpackages generate the method-specific setup code.
package convert
