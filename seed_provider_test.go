package customid

import (
	"errors"
	"sync"
	"testing"
)

func TestNewStaticSeedProvider(t *testing.T) {
	p, err := NewStaticSeedProvider(testSeed)
	if err != nil {
		t.Fatalf("NewStaticSeedProvider: %v", err)
	}

	seed, err := p.Seed()
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if seed != testSeed {
		t.Errorf("Seed(): got %q, want %q", seed, testSeed)
	}
}

func TestStaticSeedProviderMachineID(t *testing.T) {
	p, err := NewStaticSeedProvider(testSeedHex)
	if err != nil {
		t.Fatalf("NewStaticSeedProvider: %v", err)
	}
	seed, _ := p.Seed()
	if seed != testSeedHex {
		t.Errorf("Seed(): got %q, want %q", seed, testSeedHex)
	}
}

func TestStaticSeedProviderInvalidSeed(t *testing.T) {
	_, err := NewStaticSeedProvider("not-a-uuid")
	if !IsInvalidFormat(err) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}

	_, err = NewStaticSeedProvider("")
	if !IsEmptyInput(err) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestStaticSeedProviderKeepsWhitespace(t *testing.T) {
	p, err := NewStaticSeedProvider(testSeedHex + "\n")
	if err != nil {
		t.Fatalf("NewStaticSeedProvider: %v", err)
	}
	seed, _ := p.Seed()
	if seed != testSeedHex+"\n" {
		t.Errorf("Seed(): got %q, want untrimmed seed", seed)
	}
}

func TestStaticSeedProviderWithTrim(t *testing.T) {
	p, err := NewStaticSeedProvider("  "+testSeedHex+"\n", WithTrim())
	if err != nil {
		t.Fatalf("NewStaticSeedProvider: %v", err)
	}
	seed, _ := p.Seed()
	if seed != testSeedHex {
		t.Errorf("Seed(): got %q, want %q", seed, testSeedHex)
	}
}

func TestStaticSeedProviderWithTrimEmpty(t *testing.T) {
	_, err := NewStaticSeedProvider(" \n ", WithTrim())
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestStaticSeedProviderConcurrent(t *testing.T) {
	p, err := NewStaticSeedProvider(testSeed)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seed, err := p.Seed()
			if err != nil {
				t.Errorf("Seed: %v", err)
				return
			}
			if seed != testSeed {
				t.Errorf("Seed(): got %q", seed)
			}
		}()
	}
	wg.Wait()
}
