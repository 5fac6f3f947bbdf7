package database

import "github.com/JaimeStill/doc-library/pkg/lifecycle"

func CloseOnShutdown(s System, lc *lifecycle.Coordinator) {
	s.(*database).closeOnShutdown(lc)
}
