package nmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sensorContext(t *testing.T) (*Context, *TokenSet) {
	t.Helper()
	return newTestContext(t, Capability{Modules: ModuleSensor, ValidateChecksums: true})
}

func TestApplyDepthSentences(t *testing.T) {
	ctx, scratch := sensorContext(t)
	require.NoError(t, ctx.Parse(line("SDDBT,3.2,f,0.9,M,0.5,F"), scratch))
	require.NoError(t, ctx.Parse(line("SDDPT,76.1,0.0"), scratch))

	s, err := ctx.Sensor()
	require.NoError(t, err)
	assert.Equal(t, Float{Value: 0.9, Valid: true}, s.DepthBelowTransducer)
	assert.Equal(t, Float{Value: 76.1, Valid: true}, s.Depth)
	assert.Equal(t, Float{Value: 0, Valid: true}, s.KeelOffset)
}

func TestApplyMTW(t *testing.T) {
	ctx, scratch := sensorContext(t)
	require.NoError(t, ctx.Parse(line("IIMTW,17.9,C"), scratch))

	s, err := ctx.Sensor()
	require.NoError(t, err)
	assert.Equal(t, Float{Value: 17.9, Valid: true}, s.WaterTemperature)
}

func TestApplyWindSentences(t *testing.T) {
	ctx, scratch := sensorContext(t)
	require.NoError(t, ctx.Parse(line("IIMWV,214.8,R,0.1,K,A"), scratch))
	require.NoError(t, ctx.Parse(line("WIMWD,359.9,T,359.2,M,10.2,N,5.2,M"), scratch))

	s, err := ctx.Sensor()
	require.NoError(t, err)
	assert.Equal(t, Float{Value: 214.8, Valid: true}, s.WindAngle)
	assert.Equal(t, Char{Value: 'R', Valid: true}, s.WindReference)
	assert.Equal(t, Float{Value: 0.1, Valid: true}, s.WindSpeed)
	assert.Equal(t, Char{Value: 'K', Valid: true}, s.WindSpeedUnit)
	assert.Equal(t, Char{Value: 'A', Valid: true}, s.WindStatus)
	assert.Equal(t, Float{Value: 359.9, Valid: true}, s.WindDirectionTrue)
	assert.Equal(t, Float{Value: 359.2, Valid: true}, s.WindDirectionMagnetic)
	assert.Equal(t, Float{Value: 10.2, Valid: true}, s.WindSpeedKnots)
	assert.Equal(t, Float{Value: 5.2, Valid: true}, s.WindSpeedMS)
}

func TestApplyLogSentences(t *testing.T) {
	ctx, scratch := sensorContext(t)
	require.NoError(t, ctx.Parse(line("VWVHW,045.0,T,043.0,M,3.5,N,6.4,K"), scratch))
	require.NoError(t, ctx.Parse(line("VWVLW,2.8,N,0.4,N"), scratch))

	s, err := ctx.Sensor()
	require.NoError(t, err)
	assert.Equal(t, Float{Value: 45, Valid: true}, s.WaterHeadingTrue)
	assert.Equal(t, Float{Value: 43, Valid: true}, s.WaterHeadingMagnetic)
	assert.Equal(t, Float{Value: 3.5, Valid: true}, s.WaterSpeed)
	assert.Equal(t, Float{Value: 2.8, Valid: true}, s.DistanceTotal)
	assert.Equal(t, Float{Value: 0.4, Valid: true}, s.DistanceSinceReset)
}

func TestApplyXDR(t *testing.T) {
	t.Run("Two quadruples", func(t *testing.T) {
		ctx, scratch := sensorContext(t)
		require.NoError(t, ctx.Parse([]byte("$IIXDR,C,19.52,C,TempAir,P,1.02481,B,Baro*15"), scratch))

		s, err := ctx.Sensor()
		require.NoError(t, err)
		require.Equal(t, Int{Value: 2, Valid: true}, s.TransducerCount)

		air := s.Transducers[0]
		assert.Equal(t, byte('C'), air.Kind)
		assert.InDelta(t, 19.52, air.Value, 1e-9)
		assert.Equal(t, byte('C'), air.Unit)
		assert.Equal(t, "TempAir", air.Name())

		baro := s.Transducers[1]
		assert.Equal(t, byte('P'), baro.Kind)
		assert.InDelta(t, 1.02481, baro.Value, 1e-9)
		assert.Equal(t, byte('B'), baro.Unit)
		assert.Equal(t, "Baro", baro.Name())
	})

	t.Run("Quadruple without value is skipped", func(t *testing.T) {
		ctx, scratch := sensorContext(t)
		require.NoError(t, ctx.Parse(line("IIXDR,C,,C,TempAir,P,1.02481,B,Baro"), scratch))

		s, err := ctx.Sensor()
		require.NoError(t, err)
		require.Equal(t, Int{Value: 1, Valid: true}, s.TransducerCount)
		assert.Equal(t, byte('P'), s.Transducers[0].Kind)
		assert.Equal(t, "Baro", s.Transducers[0].Name())
	})

	t.Run("Identifier truncates to eight characters", func(t *testing.T) {
		ctx, scratch := sensorContext(t)
		require.NoError(t, ctx.Parse(line("IIXDR,C,8.11,C,HullTemperature"), scratch))

		s, err := ctx.Sensor()
		require.NoError(t, err)
		require.Equal(t, Int{Value: 1, Valid: true}, s.TransducerCount)
		assert.Equal(t, "HullTemp", s.Transducers[0].Name())
	})

	t.Run("Missing unit decodes as zero byte", func(t *testing.T) {
		ctx, scratch := sensorContext(t)
		require.NoError(t, ctx.Parse(line("IIXDR,A,5.2,,Rudder"), scratch))

		s, err := ctx.Sensor()
		require.NoError(t, err)
		require.Equal(t, Int{Value: 1, Valid: true}, s.TransducerCount)
		assert.Equal(t, byte(0), s.Transducers[0].Unit)
	})

	t.Run("No surviving quadruple leaves the table alone", func(t *testing.T) {
		ctx, scratch := sensorContext(t)
		require.NoError(t, ctx.Parse(line("IIXDR,C,19.52,C,TempAir"), scratch))
		require.NoError(t, ctx.Parse(line("IIXDR,C,,C,TempAir"), scratch))

		s, err := ctx.Sensor()
		require.NoError(t, err)
		assert.Equal(t, Int{Value: 1, Valid: true}, s.TransducerCount)
		assert.Equal(t, "TempAir", s.Transducers[0].Name())
	})
}
