package ele

import "github.com/lidaltonlima/go-frame3d/model"

// Prepare computes and stores a bar's local stiffness (with and without
// release condensation), rotation matrix and global stiffness. It must run
// once before any load vector or assembly operation touches the bar.
func Prepare(bar *model.Bar, yUp bool) {
	sec, mat := bar.Section, bar.Material
	klNoReleases := LocalStiffness(bar.Length, sec.Area, sec.Ix, sec.Iy, sec.Iz, mat.E, mat.G)
	kl := CondenseReleases(klNoReleases, bar.Releases.Flags())
	r := RotationMatrix(bar, yUp)
	klg := GlobalStiffness(kl, r)

	bar.KlNoReleases = klNoReleases
	bar.Kl = kl
	bar.R = r
	bar.Klg = klg
}
