/*
Package transcode rewrites escaped string literals into a numeric
initializer list.

Input such as

	"abc\Udef"
	"\7y"

becomes

	{
	ABC, 0xDEF,
	07Y
	}

The escape symbols are U (written as 0x) and the octal digits 0 to 7
(written as a zero-prefixed digit). The pipeline is a fixed sequence of
literal substring replacements; see Text.
*/
package transcode
