package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// writeTestWAV encodes a short tone at rate into dir/name
func writeTestWAV(t *testing.T, dir, name string, rate beep.SampleRate, d time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, NewOscillator(440, d, WaveSine, rate), format); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return path
}

// TestLoadWAVMissingFile verifies a missing cue file is reported as not found
func TestLoadWAVMissingFile(t *testing.T) {
	_, err := LoadWAV(filepath.Join(t.TempDir(), "eat.wav"), beep.SampleRate(48000))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

// TestLoadWAVGarbage verifies a non-WAV file fails to decode
func TestLoadWAVGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "move.wav")
	if err := os.WriteFile(path, []byte("not a wave file"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWAV(path, beep.SampleRate(48000)); err == nil {
		t.Error("Expected decode error")
	}
}

// TestLoadWAVSameRate verifies sample count is preserved at the native rate
func TestLoadWAVSameRate(t *testing.T) {
	rate := beep.SampleRate(44100)
	path := writeTestWAV(t, t.TempDir(), "eat.wav", rate, 100*time.Millisecond)

	buf, err := LoadWAV(path, rate)
	if err != nil {
		t.Fatalf("LoadWAV failed: %v", err)
	}
	if buf.Len() != rate.N(100*time.Millisecond) {
		t.Errorf("Buffer length = %d, want %d", buf.Len(), rate.N(100*time.Millisecond))
	}
}

// TestLoadWAVResamples verifies a foreign rate is converted to the target rate
func TestLoadWAVResamples(t *testing.T) {
	path := writeTestWAV(t, t.TempDir(), "crash.wav", beep.SampleRate(22050), 200*time.Millisecond)

	target := beep.SampleRate(44100)
	buf, err := LoadWAV(path, target)
	if err != nil {
		t.Fatalf("LoadWAV failed: %v", err)
	}
	if buf.Format().SampleRate != target {
		t.Errorf("Buffer rate = %d, want %d", buf.Format().SampleRate, target)
	}

	want := target.N(200 * time.Millisecond)
	if diff := buf.Len() - want; diff < -want/10 || diff > want/10 {
		t.Errorf("Resampled length = %d, want about %d", buf.Len(), want)
	}
}
