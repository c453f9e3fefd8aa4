package sc

import "testing"

func TestObjectCode(t *testing.T) {
	o := NewObject("Pan2").Method("ar").
		Arg(Nested(NewObject("SinOsc").Method("ar").ArgFloat(440))).
		ArgFloat(0.5)

	want := "Pan2.ar(SinOsc.ar(440.0), 0.5)"
	if got := o.Code(); got != want {
		t.Fatalf("code mismatch: got %q want %q", got, want)
	}
}

func TestObjectProperties(t *testing.T) {
	o := NewObject("VBAP").Method("ar").
		ArgInt(8).
		Prop("spread", Float(45)).
		Prop("mode", Symbol("circular"))

	want := `VBAP.ar(8, spread: 45.0, mode: \circular)`
	if got := o.Code(); got != want {
		t.Fatalf("code mismatch: got %q want %q", got, want)
	}
}

func TestObjectNoArgs(t *testing.T) {
	if got, want := NewObject("Server").Method("default").Code(), "Server.default()"; got != want {
		t.Fatalf("code mismatch: got %q want %q", got, want)
	}
}

func TestValueCode(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"float", Float(1.5), "1.5"},
		{"float whole", Float(2), "2.0"},
		{"int", Int(7), "7"},
		{"string", String(`a "b"`), `"a \"b\""`},
		{"symbol", Symbol("wfs"), `\wfs`},
		{"bool", Bool(true), "true"},
		{"array", Array(Int(1), Float(2), String("x")), `[1, 2.0, "x"]`},
		{"floats", Floats(0, 90, 180), "[0.0, 90.0, 180.0]"},
		{"nested array", Array(Array(Int(1), Int(2)), Array(Int(3))), "[[1, 2], [3]]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Code(); got != tc.want {
				t.Fatalf("code mismatch: got %q want %q", got, tc.want)
			}
		})
	}
}
