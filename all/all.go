// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package all registers every hash provider in this repo. Import it for
// its side effects when you want the full set:
//
//	import _ "leb.io/fasthash/all"
//
// Programs that care about binary size import only the families they
// dispatch to.
package all

import (
	_ "leb.io/fasthash/aeshash"
	_ "leb.io/fasthash/city"
	_ "leb.io/fasthash/jenkins264"
	_ "leb.io/fasthash/jenkins3"
	_ "leb.io/fasthash/murmur3"
	_ "leb.io/fasthash/murmur3x"
	_ "leb.io/fasthash/siphash"
	_ "leb.io/fasthash/spooky"
	_ "leb.io/fasthash/t1ha"
	_ "leb.io/fasthash/wyhash"
	_ "leb.io/fasthash/xxh3"
	_ "leb.io/fasthash/xxhash"
)
