package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/state"
)

type toolHandler func(ctx context.Context, request mcp.CallToolRequest) (any, error)

// tool bundles a definition with its handler so the set can be registered
// and tested as a table.
type tool struct {
	def    mcp.Tool
	handle toolHandler
}

func registerTools(srv *server.MCPServer, svc *Service) {
	for _, t := range tools(svc) {
		srv.AddTool(t.def, wrap(t.handle))
	}
}

func wrap(h toolHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		v, err := h(ctx, request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(v)
	}
}

func bind[T any](request mcp.CallToolRequest) (T, error) {
	var v T
	if err := request.BindArguments(&v); err != nil {
		return v, fmt.Errorf("invalid arguments: %w", err)
	}
	return v, nil
}

func idArg(what string) mcp.ToolOption {
	return mcp.WithString("id", mcp.Required(), mcp.Description(fmt.Sprintf("Identifier of the %s.", what)))
}

var (
	gearFields = []mcp.ToolOption{
		mcp.WithString("category", mcp.Description("Gear category."),
			mcp.Enum("helmet", "jacket", "gloves", "boots", "pants", "accessories")),
		mcp.WithString("priority", mcp.Description("Purchase priority."), mcp.Enum("high", "medium", "low")),
		mcp.WithBoolean("owned", mcp.Description("Whether the item is already owned.")),
		mcp.WithNumber("price", mcp.Description("Price of the item.")),
		mcp.WithString("target_date", mcp.Description("Date to buy by (YYYY-MM-DD); empty clears it.")),
		mcp.WithString("notes", mcp.Description("Free-form notes.")),
	}
	eventFields = []mcp.ToolOption{
		mcp.WithString("type", mcp.Description("Event type."), mcp.Enum("maintenance", "cleaning", "service", "custom")),
		mcp.WithString("description", mcp.Description("Longer description.")),
		mcp.WithString("icon", mcp.Description("Emoji shown next to the title.")),
		mcp.WithBoolean("completed", mcp.Description("Whether the event is done.")),
		mcp.WithBoolean("recurring", mcp.Description("Whether the event repeats.")),
	}
	fuelFields = []mcp.ToolOption{
		mcp.WithNumber("price_per_liter", mcp.Description("Price per liter.")),
		mcp.WithNumber("odometer", mcp.Description("Odometer reading at the pump, km.")),
		mcp.WithString("fuel_type", mcp.Description("Fuel grade."), mcp.Enum("petrol", "premium", "diesel")),
		mcp.WithBoolean("full_tank", mcp.Description("Whether the tank was filled up; efficiency uses full fills only.")),
		mcp.WithString("date", mcp.Description("Date of the fill (defaults to now).")),
		mcp.WithString("notes", mcp.Description("Free-form notes.")),
	}
	tripFields = []mcp.ToolOption{
		mcp.WithString("start_date", mcp.Description("Start date (defaults to now).")),
		mcp.WithString("end_date", mcp.Description("End date; empty keeps the trip open.")),
		mcp.WithNumber("start_odometer", mcp.Description("Odometer at the start, km (defaults to the current total).")),
		mcp.WithNumber("end_odometer", mcp.Description("Odometer at the end, km.")),
		mcp.WithString("notes", mcp.Description("Free-form notes.")),
		mcp.WithArray("locations", mcp.Description("Places along the route."), mcp.Items(map[string]any{"type": "string"})),
	}
)

func newTool(name, description string, opts ...[]mcp.ToolOption) mcp.Tool {
	all := []mcp.ToolOption{mcp.WithDescription(description)}
	for _, o := range opts {
		all = append(all, o...)
	}
	return mcp.NewTool(name, all...)
}

func tools(svc *Service) []tool {
	a := svc.App
	return []tool{
		{
			def: newTool("record_mileage", "Log a ride and advance the odometer.", []mcp.ToolOption{
				mcp.WithNumber("kilometers", mcp.Required(), mcp.Description("Distance ridden, km.")),
				mcp.WithString("notes", mcp.Description("Where you went.")),
			}),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				args, err := bind[struct {
					Kilometers float64 `json:"kilometers"`
					Notes      string  `json:"notes"`
				}](r)
				if err != nil {
					return nil, err
				}
				return a.RecordMileage(args.Kilometers, args.Notes)
			},
		},
		{
			def: newTool("list_mileage", "List logged rides, newest first.", []mcp.ToolOption{
				mcp.WithNumber("limit", mcp.Description("Maximum number of entries (0 for all).")),
			}),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				limit := r.GetInt("limit", 0)
				entries := svc.Mileage(limit)
				return map[string]any{"totalKilometers": a.Data().TotalKilometers, "count": len(entries), "entries": entries}, nil
			},
		},
		{
			def: newTool("list_tasks", "List maintenance tasks with due dates and streaks."),
			handle: func(context.Context, mcp.CallToolRequest) (any, error) {
				return a.Data().MaintenanceTasks, nil
			},
		},
		{
			def: newTool("complete_task", "Mark a maintenance task done now and schedule the next one.", []mcp.ToolOption{idArg("task")}),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				id, err := r.RequireString("id")
				if err != nil {
					return nil, err
				}
				return a.CompleteTask(id)
			},
		},
		{
			def: newTool("reset_task", "Clear a task's completion; the streak is kept.", []mcp.ToolOption{idArg("task")}),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				id, err := r.RequireString("id")
				if err != nil {
					return nil, err
				}
				return a.ResetTask(id)
			},
		},
		{
			def: newTool("list_components", "List component checks and their status."),
			handle: func(context.Context, mcp.CallToolRequest) (any, error) {
				return a.Data().ComponentChecks, nil
			},
		},
		{
			def: newTool("update_component", "Record an inspection of a component.", []mcp.ToolOption{
				idArg("component"),
				mcp.WithString("status", mcp.Description("Inspection result."), mcp.Enum("good", "warning", "critical")),
				mcp.WithString("notes", mcp.Description("Inspection notes.")),
			}),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				args, err := bind[struct {
					ID     string  `json:"id"`
					Status string  `json:"status"`
					Notes  *string `json:"notes"`
				}](r)
				if err != nil {
					return nil, err
				}
				var status model.Status
				if args.Status != "" {
					if status, err = model.ParseStatus(args.Status); err != nil {
						return nil, err
					}
				}
				return a.SetComponent(args.ID, status, args.Notes)
			},
		},
		{
			def: newTool("list_gear", "List riding gear, owned and wished for."),
			handle: func(context.Context, mcp.CallToolRequest) (any, error) {
				return a.Data().RidingGear, nil
			},
		},
		{
			def: newTool("add_gear", "Add a riding gear item.", []mcp.ToolOption{
				mcp.WithString("name", mcp.Required(), mcp.Description("Item name.")),
			}, gearFields),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				p, err := bind[app.GearPatch](r)
				if err != nil {
					return nil, err
				}
				return a.NewGear(p)
			},
		},
		{
			def: newTool("update_gear", "Change fields of a riding gear item.", []mcp.ToolOption{
				idArg("gear item"),
				mcp.WithString("name", mcp.Description("Item name.")),
			}, gearFields),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				args, err := bind[struct {
					ID string `json:"id"`
					app.GearPatch
				}](r)
				if err != nil {
					return nil, err
				}
				return a.PatchGear(args.ID, args.GearPatch)
			},
		},
		{
			def:    newTool("delete_gear", "Delete a riding gear item.", []mcp.ToolOption{idArg("gear item")}),
			handle: deleteBy(a.DeleteGear),
		},
		{
			def: newTool("list_events", "List calendar events, optionally within a date range.", []mcp.ToolOption{
				mcp.WithString("from", mcp.Description("First day to include.")),
				mcp.WithString("to", mcp.Description("Last day to include.")),
			}),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				return svc.Events(r.GetString("from", ""), r.GetString("to", ""))
			},
		},
		{
			def: newTool("add_event", "Schedule a calendar event.", []mcp.ToolOption{
				mcp.WithString("title", mcp.Required(), mcp.Description("Event title.")),
				mcp.WithString("date", mcp.Required(), mcp.Description("Event date.")),
			}, eventFields),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				p, err := bind[app.EventPatch](r)
				if err != nil {
					return nil, err
				}
				return a.NewEvent(p)
			},
		},
		{
			def: newTool("update_event", "Change fields of a calendar event.", []mcp.ToolOption{
				idArg("event"),
				mcp.WithString("title", mcp.Description("Event title.")),
				mcp.WithString("date", mcp.Description("Event date.")),
			}, eventFields),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				args, err := bind[struct {
					ID string `json:"id"`
					app.EventPatch
				}](r)
				if err != nil {
					return nil, err
				}
				return a.PatchEvent(args.ID, args.EventPatch)
			},
		},
		{
			def:    newTool("delete_event", "Delete a calendar event. Deleted built-in events stay deleted.", []mcp.ToolOption{idArg("event")}),
			handle: deleteBy(a.DeleteEvent),
		},
		{
			def: newTool("list_fuel", "List fill-ups, newest first."),
			handle: func(context.Context, mcp.CallToolRequest) (any, error) {
				return a.Data().FuelEntries, nil
			},
		},
		{
			def: newTool("add_fuel", "Log a fill-up.", []mcp.ToolOption{
				mcp.WithNumber("liters", mcp.Required(), mcp.Description("Liters filled.")),
			}, fuelFields),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				p, err := bind[app.FuelPatch](r)
				if err != nil {
					return nil, err
				}
				return a.NewFuel(p)
			},
		},
		{
			def: newTool("update_fuel", "Change fields of a fill-up; the total cost is recomputed.", []mcp.ToolOption{
				idArg("fuel entry"),
				mcp.WithNumber("liters", mcp.Description("Liters filled.")),
			}, fuelFields),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				args, err := bind[struct {
					ID string `json:"id"`
					app.FuelPatch
				}](r)
				if err != nil {
					return nil, err
				}
				return a.PatchFuel(args.ID, args.FuelPatch)
			},
		},
		{
			def:    newTool("delete_fuel", "Delete a fill-up.", []mcp.ToolOption{idArg("fuel entry")}),
			handle: deleteBy(a.DeleteFuel),
		},
		{
			def: newTool("fuel_stats", "Fuel spending and efficiency summary."),
			handle: func(context.Context, mcp.CallToolRequest) (any, error) {
				return state.FuelStats(a.Data()), nil
			},
		},
		{
			def: newTool("list_trips", "List trips, newest first."),
			handle: func(context.Context, mcp.CallToolRequest) (any, error) {
				return a.Data().TripEntries, nil
			},
		},
		{
			def: newTool("start_trip", "Start a trip at the current odometer. Only one trip can be in progress.", []mcp.ToolOption{
				mcp.WithString("name", mcp.Required(), mcp.Description("Trip name.")),
				mcp.WithString("notes", mcp.Description("Free-form notes.")),
				mcp.WithArray("locations", mcp.Description("Places along the route."), mcp.Items(map[string]any{"type": "string"})),
			}),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				args, err := bind[struct {
					Name      string   `json:"name"`
					Notes     string   `json:"notes"`
					Locations []string `json:"locations"`
				}](r)
				if err != nil {
					return nil, err
				}
				return a.StartTrip(args.Name, args.Notes, args.Locations)
			},
		},
		{
			def: newTool("end_trip", "Finish a trip; the distance is derived from the odometer.", []mcp.ToolOption{
				idArg("trip"),
				mcp.WithNumber("end_odometer", mcp.Description("Odometer at the end, km (defaults to the current total).")),
			}),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				id, err := r.RequireString("id")
				if err != nil {
					return nil, err
				}
				return a.EndTrip(id, r.GetFloat("end_odometer", 0))
			},
		},
		{
			def: newTool("add_trip", "Record a trip, in progress or already finished.", []mcp.ToolOption{
				mcp.WithString("name", mcp.Required(), mcp.Description("Trip name.")),
			}, tripFields),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				p, err := bind[app.TripPatch](r)
				if err != nil {
					return nil, err
				}
				return a.NewTrip(p)
			},
		},
		{
			def: newTool("update_trip", "Change fields of a trip.", []mcp.ToolOption{
				idArg("trip"),
				mcp.WithString("name", mcp.Description("Trip name.")),
			}, tripFields),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				args, err := bind[struct {
					ID string `json:"id"`
					app.TripPatch
				}](r)
				if err != nil {
					return nil, err
				}
				return a.PatchTrip(args.ID, args.TripPatch)
			},
		},
		{
			def:    newTool("delete_trip", "Delete a trip.", []mcp.ToolOption{idArg("trip")}),
			handle: deleteBy(a.DeleteTrip),
		},
		{
			def: newTool("get_bike", "Show the bike settings."),
			handle: func(context.Context, mcp.CallToolRequest) (any, error) {
				return bikePayload(a), nil
			},
		},
		{
			def: newTool("update_bike", "Change the bike settings. The odometer becomes the starting odometer plus every logged ride.", []mcp.ToolOption{
				mcp.WithString("model", mcp.Description("Bike make and model.")),
				mcp.WithNumber("year", mcp.Description("Model year.")),
				mcp.WithString("purchase_date", mcp.Description("Purchase date.")),
				mcp.WithNumber("starting_odometer", mcp.Description("Odometer before the first logged ride, km.")),
			}),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				p, err := bind[app.BikePatch](r)
				if err != nil {
					return nil, err
				}
				if _, err := a.PatchBike(p); err != nil {
					return nil, err
				}
				return bikePayload(a), nil
			},
		},
		{
			def: newTool("list_achievements", "List achievements with progress."),
			handle: func(context.Context, mcp.CallToolRequest) (any, error) {
				return svc.Achievements(), nil
			},
		},
		{
			def: newTool("check_achievements", "Re-evaluate achievements and return any newly unlocked."),
			handle: func(context.Context, mcp.CallToolRequest) (any, error) {
				unlocked := a.Store.CheckAchievements()
				return map[string]any{"unlocked": unlocked, "count": len(unlocked)}, nil
			},
		},
		{
			def: newTool("get_report", "Dashboard: overdue tasks, critical components, recent rides and achievements, upcoming events.", []mcp.ToolOption{
				mcp.WithString("window", mcp.Description("Look-ahead for upcoming events, for example 3d or 2w.")),
			}),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				return svc.Report(r.GetString("window", ""))
			},
		},
		{
			def: newTool("reset_data", "Erase all data and restore the defaults.", []mcp.ToolOption{
				mcp.WithBoolean("confirm", mcp.Required(), mcp.Description("Must be true.")),
			}),
			handle: func(_ context.Context, r mcp.CallToolRequest) (any, error) {
				if err := svc.Reset(r.GetBool("confirm", false)); err != nil {
					return nil, err
				}
				return map[string]any{"reset": true}, nil
			},
		},
	}
}

func deleteBy(del func(id string) error) toolHandler {
	return func(_ context.Context, r mcp.CallToolRequest) (any, error) {
		id, err := r.RequireString("id")
		if err != nil {
			return nil, err
		}
		if err := del(id); err != nil {
			return nil, err
		}
		return map[string]any{"id": id, "deleted": true}, nil
	}
}

func bikePayload(a *app.Service) app.BikeView {
	return app.NewBikeView(a.Bike(), a.Data().TotalKilometers)
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
