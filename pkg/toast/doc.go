// Package toast renders transient, dismissible messages for the terminal
// client, independent of the network stack.
//
// A Presenter owns at most one live toast. Showing a new message tears the
// previous one down before mounting the next, so two rapid notifications
// never coexist. A toast dismisses itself when its duration elapses, or
// earlier via Close; either way its timer is released.
//
//	p := toast.New(os.Stdout)
//	p.Success("order paid")
//	p.ShowWith(toast.Options{
//		Message:  "seat no longer available",
//		Type:     toast.TypeError,
//		Duration: 5 * time.Second,
//	})
package toast
