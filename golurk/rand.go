package golurk

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

var (
	internalSeed = CreateRandomStateSeed()
	internalRng  = CreateRNG(&internalSeed)
)

func CreateRandomStateSeed() rand.PCG {
	var randBytes [16]byte
	_, err := cryptoRand.Read(randBytes[:])
	if err != nil {
		// crypto/rand only fails when the OS entropy source is gone
		panic(err)
	}

	return *rand.NewPCG(binary.LittleEndian.Uint64(randBytes[0:8]), binary.LittleEndian.Uint64(randBytes[8:]))
}

func CreateRNG(seed *rand.PCG) *rand.Rand {
	return rand.New(seed)
}

// Random returns a 16-bit draw, the unit every creature algorithm consumes randomness in.
// A nil rng uses the package's internal generator.
func Random(rng *rand.Rand) uint16 {
	if rng == nil {
		rng = internalRng
	}

	return uint16(rng.Uint32() >> 16)
}

// Random32 composes two 16-bit draws, low half first.
func Random32(rng *rand.Rand) uint32 {
	lo := uint32(Random(rng))
	hi := uint32(Random(rng))
	return lo | hi<<16
}
