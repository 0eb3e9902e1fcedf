// /internal/launcher/watch.go
package launcher

import (
	"github.com/fsnotify/fsnotify"

	"github.com/BalaM314/MindustryLauncher/internal/log"
	"github.com/BalaM314/MindustryLauncher/internal/mods"
)

// StartWatchers registers filesystem watches on every external mod path and
// triggers a rebuild-restart when one changes. Watches use the mod
// classification from this call; a mod that changes kind later keeps its
// original watch until the launcher restarts.
func (s *Supervisor) StartWatchers() error {
	st := s.state
	if !st.Settings.RestartOnModUpdate {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	for _, entry := range mods.ClassifyAll(st.Settings.ExternalMods) {
		path := entry.Path
		switch entry.Kind {
		case mods.KindInvalid:
			continue
		case mods.KindJavaProject:
			// Watching the build output means restarts happen when the
			// user rebuilds; watching the whole tree restarts on every
			// source edit.
			if !st.Settings.WatchWholeJavaModDirectory {
				path = mods.BuildOutputDir(path)
			}
		}
		if err := watcher.Add(path); err != nil {
			log.Warn("Could not watch mod path %s: %v", path, err)
			continue
		}
		log.Debug("Watching %s for changes", path)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				log.Info("Mod file %s changed, restarting...", event.Name)
				// Overlapping events coalesce via the restart guard.
				go s.restartOrDie(true, false)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("Mod watcher error: %v", err)
			}
		}
	}()
	return nil
}
