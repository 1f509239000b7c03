package art

import "unsafe"

// Accounted sizes of the four internal-node kinds, used both to size pool
// chunks and to compute the memory-accounting delta charged on promotion
// and demotion.
var (
	sizeofNode4   = unsafe.Sizeof(node4{})
	sizeofNode16  = unsafe.Sizeof(node16{})
	sizeofNode48  = unsafe.Sizeof(node48{})
	sizeofNode256 = unsafe.Sizeof(node256{})
)

func sizeofKind(k Kind) int {
	switch k {
	case KindNode4:
		return int(sizeofNode4)
	case KindNode16:
		return int(sizeofNode16)
	case KindNode48:
		return int(sizeofNode48)
	case KindNode256:
		return int(sizeofNode256)
	default:
		return 0
	}
}
