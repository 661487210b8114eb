package transport

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// cfb8Stream implements cipher.Stream for CFB with an 8-bit segment size:
// one block-cipher invocation per plaintext byte, feeding the ciphertext
// byte back into a sliding shift register. Go's standard library only
// exposes full-block-size CFB (cipher.NewCFBEncrypter/NewCFBDecrypter use a
// segment size equal to the block size), and golang.org/x/crypto does not
// add a CFB8 mode either — the Minecraft protocol specifically requires
// CFB8, so this shift register is hand-rolled on top of the stdlib AES
// block primitive rather than pulled from any library in the corpus.
type cfb8Stream struct {
	block     cipher.Block
	register  []byte
	decrypt   bool
	blockSize int
}

func newCFB8(block cipher.Block, iv []byte, decrypt bool) *cfb8Stream {
	register := make([]byte, len(iv))
	copy(register, iv)
	return &cfb8Stream{block: block, register: register, decrypt: decrypt, blockSize: block.BlockSize()}
}

// XORKeyStream implements cipher.Stream. src and dst may overlap exactly.
func (c *cfb8Stream) XORKeyStream(dst, src []byte) {
	tmp := make([]byte, c.blockSize)
	for i := range src {
		c.block.Encrypt(tmp, c.register)

		var cipherByte byte
		if c.decrypt {
			cipherByte = src[i]
			dst[i] = src[i] ^ tmp[0]
		} else {
			dst[i] = src[i] ^ tmp[0]
			cipherByte = dst[i]
		}

		copy(c.register, c.register[1:])
		c.register[c.blockSize-1] = cipherByte
	}
}

// streamCipher holds the two independent AES/CFB8 streams used once
// encryption is enabled: one per direction, both keyed with the same
// 16-byte shared secret, which doubles as the initialization vector.
type streamCipher struct {
	encrypt cipher.Stream
	decrypt cipher.Stream
}

// newStreamCipher builds the encrypt/decrypt stream pair for a 16-byte
// shared secret. Once built, every subsequent byte written or read on the
// owning transport passes through one of these two stateful streams.
func newStreamCipher(sharedSecret []byte) (*streamCipher, error) {
	if len(sharedSecret) != 16 {
		return nil, fmt.Errorf("transport: shared secret must be 16 bytes, got %d", len(sharedSecret))
	}

	encBlock, err := aes.NewCipher(sharedSecret)
	if err != nil {
		return nil, fmt.Errorf("transport: aes cipher: %w", err)
	}
	decBlock, err := aes.NewCipher(sharedSecret)
	if err != nil {
		return nil, fmt.Errorf("transport: aes cipher: %w", err)
	}

	return &streamCipher{
		encrypt: newCFB8(encBlock, sharedSecret, false),
		decrypt: newCFB8(decBlock, sharedSecret, true),
	}, nil
}

// encryptInPlace runs the outbound stream over data, mutating it.
func (s *streamCipher) encryptInPlace(data []byte) {
	s.encrypt.XORKeyStream(data, data)
}

// decryptInPlace runs the inbound stream over data, mutating it.
func (s *streamCipher) decryptInPlace(data []byte) {
	s.decrypt.XORKeyStream(data, data)
}
