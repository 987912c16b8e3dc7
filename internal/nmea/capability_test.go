package nmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityValidate(t *testing.T) {
	tests := []struct {
		name string
		cap  Capability
		err  error
	}{
		{name: "Single module", cap: Capability{Modules: ModuleGNSS}},
		{name: "All modules", cap: Capability{Modules: ModuleAll}},
		{
			name: "Disabled sentence in enabled module",
			cap:  Capability{Modules: ModuleGNSS, Disabled: []string{"GSV"}},
		},
		{name: "No modules", cap: Capability{}, err: ErrInvalidConfig},
		{
			name: "Unknown module bit",
			cap:  Capability{Modules: Module(1 << 15)},
			err:  ErrInvalidConfig,
		},
		{
			name: "Unknown disabled identifier",
			cap:  Capability{Modules: ModuleGNSS, Disabled: []string{"QQQ"}},
			err:  ErrInvalidConfig,
		},
		{
			name: "Disabled identifier in disabled module",
			cap:  Capability{Modules: ModuleGNSS, Disabled: []string{"VDM"}},
			err:  ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cap.Validate()
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequiredTokens(t *testing.T) {
	tests := []struct {
		name     string
		modules  Module
		expected int
	}{
		{name: "GNSS alone", modules: ModuleGNSS, expected: 21},
		{name: "System alone", modules: ModuleSystem, expected: 5},
		{name: "Sensor dominates", modules: ModuleSensor | ModuleHeading, expected: 25},
		{name: "All modules", modules: ModuleAll, expected: 25},
		{name: "None", modules: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RequiredTokens(Capability{Modules: tt.modules}))
		})
	}
}

func TestRequiredTokensCoverWidestSentences(t *testing.T) {
	// The widest sentence of each module must tokenize into a scratch
	// buffer sized by RequiredTokens for that module alone.
	widest := map[Module]string{
		ModuleGNSS:       "$GPGSV,3,1,12,01,40,083,46,02,17,308,41,12,07,344,39,14,22,228,45,1",
		ModuleAIS:        "!AIVDM,2,1,3,B,55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53,0",
		ModuleNavigation: "$GPRMB,A,0.66,L,003,004,4917.24,N,12309.57,W,001.3,052.5,000.5,V",
		ModuleHeading:    "$HCHDG,101.1,3.2,E,7.1,W",
		ModuleSensor:     "$IIXDR,C,19.52,C,AirTemp,P,1.02481,B,Baro,H,48.3,P,RelHum,C,11.2,C,Water,A,3.1,D,Pitch,A,-1.2,D,Roll",
		ModuleRadar:      "$RATTM,11,11.4,13.6,T,7.0,20.0,T,0.0,0.0,N,NAME,Q,,154125.82,A",
		ModuleSafety:     "$AIALR,000001,001,V,V,AIS: no sensor position",
		ModuleComm:       "$CDDSC,20,3380400790,00,21,26,1423108312,2021,,,B,E",
		ModuleSystem:     "$GPTXT,01,01,02,u-blox ag - www.u-blox.com",
		ModuleAttitude:   "$IIRSA,10.5,A,-2.0,A",
		ModuleWaypoint:   "$GPRTE,1,1,c,Route1,W01,W02,W03,W04,W05,W06,W07,W08,W09,W10,W11,W12,W13,W14,W15,W16",
		ModuleMisc:       "$WIMDA,29.92,I,1.013,B,22.5,C,18.1,C,55.0,12.1,14.2,C,120.0,T,115.0,M,10.1,N,5.2,M",
	}

	for m, sentence := range widest {
		t.Run(m.String(), func(t *testing.T) {
			ts := NewTokenSet(RequiredTokens(Capability{Modules: m}))
			assert.NoError(t, tokenize([]byte(sentence), ts))
		})
	}
}

func TestContextSize(t *testing.T) {
	gnssOnly := ContextSize(Capability{Modules: ModuleGNSS})
	safetyOnly := ContextSize(Capability{Modules: ModuleSafety})
	all := ContextSize(Capability{Modules: ModuleAll})

	assert.Greater(t, gnssOnly, 0)
	assert.Greater(t, gnssOnly, safetyOnly, "GNSS carries the satellite table")
	assert.Greater(t, all, gnssOnly)

	// Size must be a pure function of configuration.
	assert.Equal(t, gnssOnly, ContextSize(Capability{Modules: ModuleGNSS}))
}

func TestModuleString(t *testing.T) {
	assert.Equal(t, "GNSS", ModuleGNSS.String())
	assert.Equal(t, "Misc", ModuleMisc.String())
	assert.Equal(t, "GNSS|AIS", (ModuleGNSS | ModuleAIS).String())
	assert.Equal(t, "none", Module(0).String())
}
