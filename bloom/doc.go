package bloom

/*

# A three hash membership set over 8-bit elements

This package provides a small Bloom filter variant for uint8 elements.

Conventions:

- small, composable functions
- a closed set of hash formulas, fixed at compile time
- explicit index arithmetic
- sentinel errors checked with errors.Is

## What the set is (and is not)

The set is a *probabilistic* membership test:

- If Query returns false, the element was never added.
- If Query returns true, the element may or may not have been added
  (false positives are possible).

Elements can not be removed. Flags only ever move from 0 to 1.

## Hashes

Exactly 3 hashes are used, each a pure function of the element x and the
capacity M:

	H1(x) = x mod M
	H2(x) = (2x + 3) mod M
	H3(x) = 8x mod M

Arithmetic is done in uint64, so no formula can overflow for x in 0..255.

## Storage

The M flags are packed one bit per slot. Flags returns the byte per slot view
and String renders the flags as space separated 0/1 tokens in index order:

	s, _ := bloom.WithSize(10)
	s.Add(5)
	fmt.Println(s) // 1 0 0 1 0 1 0 0 0 0

A Set is not safe for concurrent use. The zero value is not usable, create
sets with New or WithSize.

*/
