package openbump

// Boot image header field offsets
const (
	KernelSizeOffset  = 8
	RamdiskSizeOffset = 16
	SecondSizeOffset  = 24
	PageSizeOffset    = 36
	DtSizeOffset      = 40

	// HeaderSize is the number of header bytes needed to read every field.
	HeaderSize = DtSizeOffset + 4
)

// Header holds the boot image header fields that determine its layout.
type Header struct {
	// Size of the kernel in bytes
	KernelSize uint32
	// Size of the ramdisk in bytes
	RamdiskSize uint32
	// Size of the second stage bootloader in bytes
	SecondSize uint32
	// Flash page size
	PageSize uint32
	// Size of the device tree in bytes
	DtSize uint32
}

// pagedSize converts a section size to whole pages. A partial trailing
// page is not counted.
func (hdr *Header) pagedSize(size uint32) int64 {
	pageSize := int64(hdr.PageSize)
	return (int64(size) / pageSize) * pageSize
}

// PagedSizes returns the page-aligned kernel, ramdisk, second and device tree sizes.
func (hdr *Header) PagedSizes() (kernel, ramdisk, second, dt int64) {
	kernel = hdr.pagedSize(hdr.KernelSize)
	ramdisk = hdr.pagedSize(hdr.RamdiskSize)

	second = hdr.pagedSize(hdr.SecondSize)
	if second <= 0 {
		second = 0
	}

	dt = hdr.pagedSize(hdr.DtSize)
	if dt <= 0 {
		dt = 0
	}

	return
}

// ImageSize is the size of the image as declared by the header: one header
// page followed by every paged section.
func (hdr *Header) ImageSize() int64 {
	kernel, ramdisk, second, dt := hdr.PagedSizes()
	return int64(hdr.PageSize) + kernel + ramdisk + second + dt
}
