// Package audio converts the raw PCM payloads returned by the speech model
// into something a client can play.
package audio

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
)

// Speech payloads are 16-bit signed little-endian mono at 24 kHz.
const (
	SampleRate  = 24000
	NumChannels = 1
)

var ErrOddPayload = errors.New("audio: payload length is not a whole number of samples")

// DecodeBase64PCM decodes a base64 speech payload into int16 samples.
func DecodeBase64PCM(payload string) ([]int16, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	return DecodePCM(raw)
}

func DecodePCM(raw []byte) ([]int16, error) {
	if len(raw)%2 != 0 {
		return nil, ErrOddPayload
	}
	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}
	return samples, nil
}

// Normalize maps each sample into [-1, 1] by dividing by 32768.
func Normalize(samples []int16) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s) / 32768.0
	}
	return out
}

// WAVFromBase64 decodes a base64 speech payload and wraps it as WAV.
func WAVFromBase64(payload string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	if len(raw)%2 != 0 {
		return nil, ErrOddPayload
	}
	return WAV(raw), nil
}

// WAV wraps raw PCM bytes in a RIFF/WAVE container so browsers can play the
// payload directly.
func WAV(raw []byte) []byte {
	const headerSize = 44
	buf := make([]byte, headerSize+len(raw))

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+len(raw)))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16) // PCM chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(buf[22:24], NumChannels)
	binary.LittleEndian.PutUint32(buf[24:28], SampleRate)
	binary.LittleEndian.PutUint32(buf[28:32], SampleRate*NumChannels*2) // byte rate
	binary.LittleEndian.PutUint16(buf[32:34], NumChannels*2)            // block align
	binary.LittleEndian.PutUint16(buf[34:36], 16)                       // bits per sample

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(len(raw)))
	copy(buf[headerSize:], raw)
	return buf
}
