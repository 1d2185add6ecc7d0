// Package navigator drives screen navigation for the terminal client: a
// route table with parameterized paths, static redirects and guard hooks
// that run before every navigation.
//
// Handlers render one screen and return the path of the next one; an empty
// next path ends the loop. Guards may rewrite the destination, which is how
// the auth guard sends sessionless users to the login screen:
//
//	nav := navigator.New()
//	nav.Redirect("/", "/cinemas")
//	nav.Handle("/login", loginScreen)
//	nav.Handle("/cinemas", cinemaScreen)
//	nav.Handle("/schedules/:id/seats", seatScreen)
//	nav.Use(navigator.AuthGuard(store, "/login"))
//
//	err := nav.Run(ctx, "/")
//
// ForceRedirect covers the one case where navigation is requested from
// outside a handler's return value: the request pipeline's unauthorized
// hook, which must push the application to the login screen regardless of
// what the interrupted screen wanted next.
package navigator
