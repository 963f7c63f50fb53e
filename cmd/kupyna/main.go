// Command kupyna reads bytes from stdin, hashes them with Kupyna, and
// writes the hex-encoded digest to stdout. It is a thin external
// collaborator around the library: all the real work happens in the
// library package, not here.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jkoudys/kupyna"
)

func main() {
	n := flag.Int("n", 256, "digest length in bits (multiple of 8, 8..512)")
	flag.Parse()

	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal("error reading from stdin: ", err)
	}

	digest, err := kupyna.Hash(in, *n)
	if err != nil {
		log.Fatal("error hashing input: ", err)
	}

	fmt.Println(hex.EncodeToString(digest))
}
