// file: internals/helpers/timeutil.go
package helper

import "time"

// Seluruh perbandingan "hari ini" dipatok ke WIB, bukan timezone host,
// supaya batas hari konsisten di mana pun server berjalan.
var jakartaLoc = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*3600)
	}
	return loc
}()

func NowJakarta() time.Time {
	return time.Now().In(jakartaLoc)
}

// TodayJakarta mengembalikan tanggal hari ini format "YYYY-MM-DD" (WIB).
func TodayJakarta() string {
	return NowJakarta().Format("2006-01-02")
}
