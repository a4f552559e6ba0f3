package i18n

var english = map[string]string{
	"nav.playlists": "Playlists",
	"nav.artists":   "Artists",

	"panel.tracks":     "Tracks",
	"panel.topTracks":  "Top Tracks",
	"panel.albums":     "Albums",
	"panel.nowPlaying": "Now playing",
	"panel.noMusic":    "No music",
	"panel.back":       "Back",

	"loading.playlists": "Loading playlists...",
	"loading.artists":   "Loading artists...",
	"loading.tracks":    "Loading tracks...",
	"loading.topTracks": "Loading top tracks...",
	"loading.albums":    "Loading albums...",
	"loading.devices":   "Loading devices...",
	"loading.searching": "Searching for devices...",

	"empty.selectPlaylist":      "Select a playlist",
	"empty.selectArtist":        "Select an artist",
	"empty.noPlaylists":         "No playlists found",
	"empty.noArtists":           "No artists found",
	"empty.noTracks":            "No tracks found",
	"empty.noAlbums":            "No albums found",
	"empty.noDevices":           "No devices found",
	"empty.noAudioDevices":      "No audio devices found",
	"empty.noPairedDevices":     "No paired devices",
	"empty.noDiscoveredDevices": "No devices found",

	"error.loadPlaylists":       "Error loading playlists",
	"error.loadArtists":         "Error loading artists",
	"error.loadTracks":          "Error loading tracks",
	"error.loadAlbums":          "Error loading albums",
	"error.loadDevices":         "Error loading devices",
	"error.loadAudioDevices":    "Error loading audio devices",
	"error.loadBluetooth":       "Error loading",
	"error.playback":            "Something went wrong during playback",
	"error.previousTrack":       "Something went wrong with previous track",
	"error.nextTrack":           "Something went wrong with next track",
	"error.volume":              "Error adjusting volume",
	"error.seek":                "Error adjusting position",
	"error.save":                "Error saving",
	"error.deviceIdUnavailable": "Device ID not available",
	"error.selectDevice":        "Error selecting device",
	"error.connectDevice":       "Error connecting to device",
	"error.activateFailed":      "Activation failed",
	"error.activateDevice":      "Error activating device",
	"error.switchFailed":        "Could not switch",
	"error.switchError":         "Error switching",
	"error.shutdown":            "Error shutting down",
	"error.reboot":              "Error restarting",
	"error.updateCheck":         "Could not check for updates",
	"error.updateFailed":        "Update failed",
	"error.serverNotResponding": "Server not responding after update. Refresh the page manually.",

	"settings.theme":     "Theme",
	"settings.devices":   "Devices",
	"settings.volume":    "Volume",
	"settings.bluetooth": "Bluetooth",
	"settings.system":    "System",
	"settings.language":  "Language",

	"settings.computerAudio":    "Computer audio:",
	"settings.spotifyPlayOn":    "Play Spotify on:",
	"settings.localNetwork":     "Local network",
	"settings.showLocalDevices": "Show local devices",

	"settings.scan":              "Scan",
	"settings.stop":              "Stop",
	"settings.pairedDevices":     "Paired devices",
	"settings.discoveredDevices": "Discovered devices",

	"settings.defaultVolume":     "Default Volume",
	"settings.maxVolume":         "Maximum Volume",
	"settings.volumeHintDefault": "Volume at startup and device switch",
	"settings.volumeHintMax":     "Volume cannot exceed this",
	"settings.pinProtection":     "PIN Protection",
	"settings.enabled":           "Enabled",
	"settings.disabled":          "Disabled",
	"settings.clearCache":        "Clear Cache",
	"settings.refreshInterface":  "Refresh Interface",
	"settings.update":            "Update",
	"settings.checking":          "Checking...",
	"settings.logout":            "Log out",
	"settings.reboot":            "Restart",
	"settings.shutdown":          "Shut down",

	"language.title": "Language",
	"language.en":    "English",
	"language.nl":    "Nederlands",

	"bt.connecting":    "Connecting...",
	"bt.pairing":       "Pairing...",
	"bt.connected":     "Connected",
	"bt.notConnected":  "Not connected",
	"bt.available":     "Available",
	"bt.unknownDevice": "Unknown device",
	"bt.notAvailable":  "Bluetooth not available",
	"bt.forget":        "Forget",
	"bt.disconnect":    "Disconnect",

	"bt.searchStarted":    "Searching for Bluetooth devices...",
	"bt.scanFailed":       "Failed to start scan",
	"bt.startScanError":   "Error starting scan",
	"bt.paired":           "Device paired",
	"bt.pairFailed":       "Pairing failed",
	"bt.pairError":        "Error pairing",
	"bt.connectedToast":   "Connected",
	"bt.connectFailed":    "Connection failed",
	"bt.connectError":     "Error connecting",
	"bt.disconnected":     "Disconnected",
	"bt.disconnectFailed": "Disconnect failed",
	"bt.disconnectError":  "Error disconnecting",
	"bt.forgotten":        "Device forgotten",
	"bt.forgetFailed":     "Forget failed",
	"bt.forgetError":      "Error forgetting",
	"bt.enterPin":         "Enter a PIN code",
	"bt.poweredOn":        "Bluetooth enabled",
	"bt.poweredOff":       "Bluetooth disabled",
	"bt.powerFailed":      "Failed to change Bluetooth power",

	"device.playingOn":   "Playing on",
	"device.activating":  "Device needs to be activated...",
	"device.activated":   "activated",
	"device.waitSeconds": "Wait {n} more second(s)...",

	"modal.confirmTitle":     "Are you sure?",
	"modal.shutdownQuestion": "Do you want to shut down the music player?",
	"modal.shutdownConfirm":  "Yes, shut down",
	"modal.cancel":           "Cancel",

	"modal.rebootQuestion": "Do you want to restart the music player?",
	"modal.rebootConfirm":  "Yes, restart",

	"modal.pinRequired":    "PIN required",
	"modal.pinIncorrect":   "Incorrect PIN",
	"modal.enterPinDevice": "Enter the PIN code for this device:",
	"modal.pair":           "Pair",

	"modal.forgetDevice":   "Forget device?",
	"modal.forgetQuestion": "Are you sure you want to forget \"{name}\"?",
	"modal.forgetConfirm":  "Forget",

	"modal.updateAvailable": "Update available",
	"modal.currentVersion":  "Current version:",
	"modal.newVersion":      "New version:",
	"modal.updateConfirm":   "Update",

	"update.updating":       "Updating...",
	"update.downloading":    "Downloading updates...",
	"update.restarting":     "Restarting...",
	"update.serviceRestart": "Service is restarting...",
	"update.complete":       "Complete!",
	"update.success":        "Update successfully installed",
	"update.failed":         "Update failed",
	"update.upToDate":       "Application is up-to-date",

	"system.shuttingDown":   "System is shutting down...",
	"system.restarting":     "System is restarting...",
	"system.somethingWrong": "Something went wrong",

	"control.previous":  "Previous",
	"control.playPause": "Play/Pause",
	"control.next":      "Next",
	"control.shuffle":   "Shuffle",
	"control.settings":  "Settings",

	"duration.hour":   "hour",
	"duration.hours":  "hours",
	"duration.min":    "min",
	"duration.tracks": "tracks",

	"settings.account":        "Account",
	"settings.powerSaving":    "Power saving",
	"settings.rebootRequired": "Restart required to apply",
	"settings.network":        "Network",
	"settings.internet":       "Internet",
	"settings.online":         "Online",
	"settings.offline":        "Offline",
	"settings.hostname":       "Hostname",
	"settings.playerName":     "Player name",
	"settings.credentials":    "Spotify credentials",
	"settings.presets":        "Presets",
	"settings.mode":           "Mode",
	"settings.light":          "Light",
	"settings.dark":           "Dark",
	"settings.power":          "Power",
	"account.title":           "Account",
	"account.name":            "Name",
	"account.email":           "Email",
	"account.product":         "Subscription",
	"account.error":           "Spotify account problem",
	"account.errorHint":       "The backend rejected the Spotify credentials. Update them on the account tab.",
	"status.offline":          "Backend unreachable",
	"status.shuffleOn":        "Shuffle on",
	"status.shuffleOff":       "Shuffle off",
	"help.filter":             "filter",
	"help.refresh":            "refresh",
	"help.quit":               "quit",
	"help.back":               "back",
	"help.play":               "play",
	"help.seek":               "seek",
	"help.volume":             "volume",
	"help.switchView":         "switch view",
	"help.subview":            "albums/tracks",
	"help.tabs":               "tabs",
	"help.select":             "select",
	"toast.cacheCleared":      "Cache cleared",
	"toast.saved":             "Saved",

	"help.settings":        "settings",
	"help.language":        "language",
	"help.shuffle":         "shuffle",
	"help.help":            "help",
	"help.focus":           "switch pane",
	"help.toggle":          "toggle",
	"help.adjust":          "adjust",
	"help.forget":          "forget",
	"help.scan":            "scan",
	"help.edit":            "edit",
	"prompt.hostname":      "New hostname",
	"prompt.playerName":    "New player name",
	"prompt.clientId":      "Client ID",
	"prompt.clientSecret":  "Client secret",
	"prompt.pin":           "Settings PIN",
	"settings.version":     "Version",
	"settings.checkUpdate": "Check for updates",
	"settings.ip":          "IP address",
	"modal.logoutQuestion": "Do you want to log out of Spotify?",
	"modal.close":          "Close",
	"help.logs":            "logs",
	"help.follow":          "follow",
	"help.match":           "next match",
	"logs.title":           "Log",
	"logs.empty":           "No log entries",
	"logs.noFile":          "Logging to a file is disabled",
	"logs.notFound":        "Pattern not found: {query}",
	"logs.status":          "{lines} lines, follow {follow}",
	"logs.search":          "search",
}

var dutch = map[string]string{
	"nav.playlists": "Playlists",
	"nav.artists":   "Artiesten",

	"panel.tracks":     "Nummers",
	"panel.topTracks":  "Top Nummers",
	"panel.albums":     "Albums",
	"panel.nowPlaying": "Nu aan het spelen",
	"panel.noMusic":    "Geen muziek",
	"panel.back":       "Terug",

	"loading.playlists": "Playlists laden...",
	"loading.artists":   "Artiesten laden...",
	"loading.tracks":    "Nummers laden...",
	"loading.topTracks": "Top nummers laden...",
	"loading.albums":    "Albums laden...",
	"loading.devices":   "Apparaten laden...",
	"loading.searching": "Zoeken naar apparaten...",

	"empty.selectPlaylist":      "Selecteer een playlist",
	"empty.selectArtist":        "Selecteer een artiest",
	"empty.noPlaylists":         "Geen playlists gevonden",
	"empty.noArtists":           "Geen artiesten gevonden",
	"empty.noTracks":            "Geen nummers gevonden",
	"empty.noAlbums":            "Geen albums gevonden",
	"empty.noDevices":           "Geen apparaten gevonden",
	"empty.noAudioDevices":      "Geen audio apparaten gevonden",
	"empty.noPairedDevices":     "Geen gekoppelde apparaten",
	"empty.noDiscoveredDevices": "Geen apparaten gevonden",

	"error.loadPlaylists":       "Fout bij laden van playlists",
	"error.loadArtists":         "Fout bij laden van artiesten",
	"error.loadTracks":          "Fout bij laden van nummers",
	"error.loadAlbums":          "Fout bij laden van albums",
	"error.loadDevices":         "Fout bij laden van apparaten",
	"error.loadAudioDevices":    "Fout bij laden van audio apparaten",
	"error.loadBluetooth":       "Fout bij laden",
	"error.playback":            "Er ging iets mis bij het afspelen",
	"error.previousTrack":       "Er ging iets mis bij het vorige nummer",
	"error.nextTrack":           "Er ging iets mis bij het volgende nummer",
	"error.volume":              "Fout bij volume aanpassen",
	"error.seek":                "Fout bij positie aanpassen",
	"error.save":                "Fout bij opslaan",
	"error.deviceIdUnavailable": "Device ID niet beschikbaar",
	"error.selectDevice":        "Fout bij selecteren device",
	"error.connectDevice":       "Fout bij verbinden met device",
	"error.activateFailed":      "Activatie mislukt",
	"error.activateDevice":      "Fout bij activeren device",
	"error.switchFailed":        "Kon niet schakelen",
	"error.switchError":         "Fout bij schakelen",
	"error.shutdown":            "Fout bij uitschakelen",
	"error.reboot":              "Fout bij herstarten",
	"error.updateCheck":         "Kon niet controleren op updates",
	"error.updateFailed":        "Update mislukt",
	"error.serverNotResponding": "Server reageert niet na update. Ververs de pagina handmatig.",

	"settings.theme":     "Thema",
	"settings.devices":   "Apparaten",
	"settings.volume":    "Volume",
	"settings.bluetooth": "Bluetooth",
	"settings.system":    "Systeem",
	"settings.language":  "Taal",

	"settings.computerAudio":    "Computer geluid:",
	"settings.spotifyPlayOn":    "Spotify afspelen op:",
	"settings.localNetwork":     "Lokaal netwerk",
	"settings.showLocalDevices": "Toon lokale apparaten",

	"settings.scan":              "Scannen",
	"settings.stop":              "Stoppen",
	"settings.pairedDevices":     "Gekoppelde apparaten",
	"settings.discoveredDevices": "Gevonden apparaten",

	"settings.defaultVolume":     "Standaard Volume",
	"settings.maxVolume":         "Maximum Volume",
	"settings.volumeHintDefault": "Volume bij opstarten en wisselen van apparaat",
	"settings.volumeHintMax":     "Volume kan niet hoger dan dit",
	"settings.pinProtection":     "PIN Beveiliging",
	"settings.enabled":           "Ingeschakeld",
	"settings.disabled":          "Uitgeschakeld",
	"settings.clearCache":        "Cache Verwijderen",
	"settings.refreshInterface":  "Refresh Interface",
	"settings.update":            "Bijwerken",
	"settings.checking":          "Controleren...",
	"settings.logout":            "Uitloggen",
	"settings.reboot":            "Herstarten",
	"settings.shutdown":          "Afsluiten",

	"language.title": "Taal",
	"language.en":    "English",
	"language.nl":    "Nederlands",

	"bt.connecting":    "Verbinden...",
	"bt.pairing":       "Koppelen...",
	"bt.connected":     "Verbonden",
	"bt.notConnected":  "Niet verbonden",
	"bt.available":     "Beschikbaar",
	"bt.unknownDevice": "Onbekend apparaat",
	"bt.notAvailable":  "Bluetooth niet beschikbaar",
	"bt.forget":        "Vergeten",
	"bt.disconnect":    "Verbreken",

	"bt.searchStarted":    "Zoeken naar Bluetooth apparaten...",
	"bt.scanFailed":       "Scan starten mislukt",
	"bt.startScanError":   "Fout bij starten scan",
	"bt.paired":           "Apparaat gekoppeld",
	"bt.pairFailed":       "Koppelen mislukt",
	"bt.pairError":        "Fout bij koppelen",
	"bt.connectedToast":   "Verbonden",
	"bt.connectFailed":    "Verbinden mislukt",
	"bt.connectError":     "Fout bij verbinden",
	"bt.disconnected":     "Losgekoppeld",
	"bt.disconnectFailed": "Loskoppelen mislukt",
	"bt.disconnectError":  "Fout bij loskoppelen",
	"bt.forgotten":        "Apparaat vergeten",
	"bt.forgetFailed":     "Vergeten mislukt",
	"bt.forgetError":      "Fout bij vergeten",
	"bt.enterPin":         "Voer een PIN code in",
	"bt.poweredOn":        "Bluetooth ingeschakeld",
	"bt.poweredOff":       "Bluetooth uitgeschakeld",
	"bt.powerFailed":      "Kon Bluetooth status niet wijzigen",

	"device.playingOn":   "Afspelen op",
	"device.activating":  "Device moet eerst geactiveerd worden...",
	"device.activated":   "geactiveerd",
	"device.waitSeconds": "Wacht nog {n} seconde(n)...",

	"modal.confirmTitle":     "Weet je het zeker?",
	"modal.shutdownQuestion": "Wil je de muziekspeler uitschakelen?",
	"modal.shutdownConfirm":  "Ja, uitschakelen",
	"modal.cancel":           "Annuleren",

	"modal.rebootQuestion": "Wil je de muziekspeler herstarten?",
	"modal.rebootConfirm":  "Ja, herstarten",

	"modal.pinRequired":    "PIN vereist",
	"modal.pinIncorrect":   "Onjuiste PIN",
	"modal.enterPinDevice": "Voer de PIN code in voor dit apparaat:",
	"modal.pair":           "Koppelen",

	"modal.forgetDevice":   "Apparaat vergeten?",
	"modal.forgetQuestion": "Weet je zeker dat je \"{name}\" wilt vergeten?",
	"modal.forgetConfirm":  "Vergeten",

	"modal.updateAvailable": "Update beschikbaar",
	"modal.currentVersion":  "Huidige versie:",
	"modal.newVersion":      "Nieuwe versie:",
	"modal.updateConfirm":   "Bijwerken",

	"update.updating":       "Bijwerken...",
	"update.downloading":    "Downloaden van updates...",
	"update.restarting":     "Herstarten...",
	"update.serviceRestart": "Service wordt herstart...",
	"update.complete":       "Voltooid!",
	"update.success":        "Update succesvol geïnstalleerd",
	"update.failed":         "Update mislukt",
	"update.upToDate":       "Applicatie is up-to-date",

	"system.shuttingDown":   "Systeem wordt uitgeschakeld...",
	"system.restarting":     "Systeem wordt herstart...",
	"system.somethingWrong": "Er ging iets mis",

	"control.previous":  "Vorige",
	"control.playPause": "Afspelen/Pauzeren",
	"control.next":      "Volgende",
	"control.shuffle":   "Shuffle",
	"control.settings":  "Instellingen",

	"duration.hour":   "uur",
	"duration.hours":  "uur",
	"duration.min":    "min",
	"duration.tracks": "nummers",

	"settings.account":        "Account",
	"settings.powerSaving":    "Energiebesparing",
	"settings.rebootRequired": "Herstart nodig om toe te passen",
	"settings.network":        "Netwerk",
	"settings.internet":       "Internet",
	"settings.online":         "Online",
	"settings.offline":        "Offline",
	"settings.hostname":       "Hostnaam",
	"settings.playerName":     "Spelernaam",
	"settings.credentials":    "Spotify gegevens",
	"settings.presets":        "Voorinstellingen",
	"settings.mode":           "Modus",
	"settings.light":          "Licht",
	"settings.dark":           "Donker",
	"settings.power":          "Aan/uit",
	"account.title":           "Account",
	"account.name":            "Naam",
	"account.email":           "E-mail",
	"account.product":         "Abonnement",
	"account.error":           "Probleem met Spotify account",
	"account.errorHint":       "De backend weigert de Spotify gegevens. Pas ze aan op het account tabblad.",
	"status.offline":          "Backend onbereikbaar",
	"status.shuffleOn":        "Shuffle aan",
	"status.shuffleOff":       "Shuffle uit",
	"help.filter":             "filteren",
	"help.refresh":            "vernieuwen",
	"help.quit":               "afsluiten",
	"help.back":               "terug",
	"help.play":               "afspelen",
	"help.seek":               "spoelen",
	"help.volume":             "volume",
	"help.switchView":         "weergave",
	"help.subview":            "albums/nummers",
	"help.tabs":               "tabbladen",
	"help.select":             "kiezen",
	"toast.cacheCleared":      "Cache verwijderd",
	"toast.saved":             "Opgeslagen",

	"help.settings":        "instellingen",
	"help.language":        "taal",
	"help.shuffle":         "shuffle",
	"help.help":            "help",
	"help.focus":           "paneel wisselen",
	"help.toggle":          "aan/uit",
	"help.adjust":          "aanpassen",
	"help.forget":          "vergeten",
	"help.scan":            "zoeken",
	"help.edit":            "wijzigen",
	"prompt.hostname":      "Nieuwe hostnaam",
	"prompt.playerName":    "Nieuwe spelernaam",
	"prompt.clientId":      "Client-ID",
	"prompt.clientSecret":  "Client-secret",
	"prompt.pin":           "Instellingen-PIN",
	"settings.version":     "Versie",
	"settings.checkUpdate": "Zoeken naar updates",
	"settings.ip":          "IP-adres",
	"modal.logoutQuestion": "Wil je uitloggen bij Spotify?",
	"modal.close":          "Sluiten",
	"help.logs":            "logboek",
	"help.follow":          "volgen",
	"help.match":           "volgende treffer",
	"logs.title":           "Logboek",
	"logs.empty":           "Geen logregels",
	"logs.noFile":          "Loggen naar een bestand staat uit",
	"logs.notFound":        "Patroon niet gevonden: {query}",
	"logs.status":          "{lines} regels, volgen {follow}",
	"logs.search":          "zoeken",
}
