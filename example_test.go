package b64_test

import (
	"fmt"

	"github.com/thehowl/b64"
)

func ExampleEncodeToString() {
	fmt.Println(b64.EncodeToString([]byte("any carnal pleasure.")))
	fmt.Println(b64.EncodeToStringURL([]byte{0xfb, 0xff, 0xbf}))

	// Output:
	// YW55IGNhcm5hbCBwbGVhc3VyZS4=
	// -_-_
}

func ExampleDecodeString() {
	// noise bytes are skipped, not rejected
	fmt.Printf("%s\n", b64.DecodeString("YW55IGNhcm5hbCBwbGVhc3VyZS4="))
	fmt.Printf("%s\n", b64.DecodeString("Zm9v\r\nYmFy"))

	// Output:
	// any carnal pleasure.
	// foobar
}

func ExampleDecode() {
	// a nil dst decodes over the source buffer
	buf := []byte("Zm9vYmFy")
	n := b64.Decode(nil, buf)
	fmt.Printf("%s\n", buf[:n])

	// Output:
	// foobar
}
