/*
Package escbytes converts a text file of escaped string literals into a
brace-wrapped initializer list of byte values, ready to paste into source
code.

The recognised escapes are \U, written as 0x, and the octal digits \0 to
\7, written with a leading zero. Everything else is upper-cased and kept,
double quotes are dropped and CRLF line endings become LF.

# Usage

The conversion always reads pySrc.txt and writes pyDst.txt in the chosen
directory:

	conv, err := escbytes.New(".")
	if err != nil {
		log.Fatal(err)
	}
	if err := conv.Run(context.Background()); err != nil {
		log.Fatal(err)
	}

Given pySrc.txt containing

	"abc\Udef"
	"\7y"

pyDst.txt holds

	{
	ABC, 0xDEF,
	07Y
	}

Both files are US-ASCII; a byte outside 7-bit ASCII fails the run.
Transcode exposes the same conversion for text already in memory.
*/
package escbytes
