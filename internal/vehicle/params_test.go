package vehicle

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Params)
		wantErr bool
	}{
		{"default", func(p *Params) {}, false},
		{"zero mass", func(p *Params) { p.Mass = 0 }, true},
		{"negative mass", func(p *Params) { p.Mass = -100 }, true},
		{"zero wheelbase", func(p *Params) { p.Wheelbase = 0 }, true},
		{"zero wheel radius", func(p *Params) { p.WheelRadius = 0 }, true},
		{"front fraction zero", func(p *Params) { p.WeightDistFront = 0; p.WeightDistRear = 1 }, true},
		{"fractions over one", func(p *Params) { p.WeightDistFront = 0.6; p.WeightDistRear = 0.6 }, true},
		{"fractions under one", func(p *Params) { p.WeightDistFront = 0.4; p.WeightDistRear = 0.4 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.modify(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSet(t *testing.T) {
	p := Default()
	if err := p.Set("downforce_coeff", 4.2); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if p.DownforceCoeff != 4.2 {
		t.Errorf("DownforceCoeff = %g, want 4.2", p.DownforceCoeff)
	}

	if err := p.Set("flux_capacitance", 1.21); err == nil {
		t.Error("expected error for unknown param")
	}
}

func TestSetDoesNotTouchCopies(t *testing.T) {
	base := Default()
	variant := base
	if err := variant.Set("mass", 850); err != nil {
		t.Fatal(err)
	}
	if base.Mass != Default().Mass {
		t.Error("override leaked into base params")
	}
}

func TestGetRoundTrip(t *testing.T) {
	p := Default()
	m := p.Get()
	for name, want := range m {
		q := Default()
		if err := q.Set(name, want+1); err != nil {
			t.Errorf("Set(%q) failed: %v", name, err)
			continue
		}
		if q.Get()[name] != want+1 {
			t.Errorf("Set(%q) not reflected in Get", name)
		}
	}
}
