package quota

type Module struct {
	Svc          Service
	AdminHandler *AdminHandler
}
