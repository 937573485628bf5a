package cursor

// Bytes is a contiguous byte buffer presented as a single chunk.
type Bytes []byte

func (b Bytes) Chunk() []byte { return b }

// UTF8Aware is always true: a single chunk has no boundaries to split.
func (b Bytes) UTF8Aware() bool { return true }

func (b Bytes) Advance() bool   { return false }
func (b Bytes) Backtrack() bool { return false }

// String is a string presented as a single chunk.
type String string

func (s String) Chunk() []byte { return bytesOf(string(s)) }

// UTF8Aware is always true: a single chunk has no boundaries to split.
func (s String) UTF8Aware() bool { return true }

func (s String) Advance() bool   { return false }
func (s String) Backtrack() bool { return false }
