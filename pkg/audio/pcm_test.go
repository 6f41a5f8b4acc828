package audio

import (
	"encoding/base64"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodeSamples(samples []int16) []byte {
	raw := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(s))
	}
	return raw
}

func TestDecodeBase64PCM(t *testing.T) {
	samples := []int16{0, 1, -1, 32767, -32768}
	payload := base64.StdEncoding.EncodeToString(encodeSamples(samples))

	got, err := DecodeBase64PCM(payload)
	require.NoError(t, err)
	require.Equal(t, samples, got)
}

func TestDecodePCMRejectsOddLength(t *testing.T) {
	_, err := DecodePCM([]byte{0x01, 0x02, 0x03})
	require.ErrorIs(t, err, ErrOddPayload)
}

func TestDecodeBase64PCMRejectsBadBase64(t *testing.T) {
	_, err := DecodeBase64PCM("not base64!!!")
	require.Error(t, err)
}

func TestNormalize(t *testing.T) {
	got := Normalize([]int16{0, 16384, -16384, 32767, -32768})
	require.InDelta(t, 0.0, got[0], 1e-9)
	require.InDelta(t, 0.5, got[1], 1e-9)
	require.InDelta(t, -0.5, got[2], 1e-9)
	require.InDelta(t, 32767.0/32768.0, got[3], 1e-9)
	require.InDelta(t, -1.0, got[4], 1e-9)
}

func TestWAVHeader(t *testing.T) {
	raw := encodeSamples([]int16{1, 2, 3, 4})
	wav := WAV(raw)

	require.Len(t, wav, 44+len(raw))
	require.Equal(t, "RIFF", string(wav[0:4]))
	require.Equal(t, "WAVE", string(wav[8:12]))
	require.Equal(t, "fmt ", string(wav[12:16]))
	require.Equal(t, "data", string(wav[36:40]))

	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[20:22]))              // PCM
	require.Equal(t, uint16(NumChannels), binary.LittleEndian.Uint16(wav[22:24]))    // mono
	require.Equal(t, uint32(SampleRate), binary.LittleEndian.Uint32(wav[24:28]))     // 24 kHz
	require.Equal(t, uint16(16), binary.LittleEndian.Uint16(wav[34:36]))             // 16-bit
	require.Equal(t, uint32(len(raw)), binary.LittleEndian.Uint32(wav[40:44]))       // data size
	require.Equal(t, uint32(36+len(raw)), binary.LittleEndian.Uint32(wav[4:8]))      // riff size
	require.Equal(t, uint32(SampleRate*2), binary.LittleEndian.Uint32(wav[28:32]))   // byte rate
	require.Equal(t, raw, wav[44:])
}

func TestWAVFromBase64(t *testing.T) {
	raw := encodeSamples([]int16{100, -100})
	wav, err := WAVFromBase64(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	require.Equal(t, raw, wav[44:])

	_, err = WAVFromBase64(base64.StdEncoding.EncodeToString([]byte{0x01}))
	require.ErrorIs(t, err, ErrOddPayload)
}
