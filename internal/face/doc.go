// Package face defines the contract between watch faces and their host.
//
// A host owns the display, buzzer, RTC and scheduling; faces consume those
// services through the interfaces here and are driven through the Face
// lifecycle with discrete events. The package carries no behaviour of its
// own: implementations live with the host (see internal/service/simulator)
// and faces live under internal/face.
package face
